package handlers

import (
	"github.com/aabb-jequie/app-inscricao/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the /v1 API on router.
func RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1")
	{
		v1.GET("/health", HealthCheck)
		v1.GET("/options", GetOptions)
		v1.GET("/cep/:cep", LookupCEP)

		v1.POST("/applications", throttleSubmissions(), SubmitApplication)
		v1.POST("/applications/validate-step/:step", ValidateStep)

		v1.POST("/wizard", throttleSubmissions(), CreateWizardSession)
		v1.GET("/wizard/:id", GetWizardSession)
		v1.PATCH("/wizard/:id/data", UpdateWizardData)
		v1.POST("/wizard/:id/next", WizardNext)
		v1.POST("/wizard/:id/back", WizardBack)
		v1.POST("/wizard/:id/submit-intent", WizardSubmitIntent)
		v1.POST("/wizard/:id/cancel-terms", WizardCancelTerms)
		v1.POST("/wizard/:id/confirm", throttleSubmissions(), WizardConfirm)
	}

	admin := v1.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/applications", ListApplications)
		admin.GET("/applications/:id", GetApplication)
		admin.PATCH("/applications/:id", UpdateApplication)
		admin.DELETE("/applications/:id", DeleteApplication)
		admin.GET("/applications/:id/receipt", GetApplicationReceipt)
	}
}
