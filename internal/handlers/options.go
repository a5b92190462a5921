package handlers

import (
	"net/http"

	"github.com/aabb-jequie/app-inscricao/internal/catalog"
	"github.com/gin-gonic/gin"
)

// GetOptions godoc
// @Summary Listar opções do formulário
// @Description Retorna bairros, estados civis, formas de pagamento, dias de vencimento, parentescos e UFs aceitos pela ficha.
// @Tags applications
// @Produce json
// @Success 200 {object} catalog.Catalog "Catálogo de opções"
// @Router /options [get]
func GetOptions(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.JSON(http.StatusOK, catalog.Default())
}
