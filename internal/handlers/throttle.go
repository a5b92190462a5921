package handlers

import (
	"net/http"

	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/gin-gonic/gin"
)

// throttleSubmissions rejects clients that exceed the per-minute submission
// budget. It is a no-op when no limiter is configured.
func throttleSubmissions() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := services.SubmissionLimiterInstance
		if limiter != nil && !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "Muitas tentativas. Aguarde um minuto e tente novamente.",
				Code:  CodeRateLimited,
			})
			return
		}
		c.Next()
	}
}
