package handlers

import (
	"errors"
	"net/http"

	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// LookupCEP godoc
// @Summary Consultar CEP
// @Description Retorna logradouro, bairro, cidade e UF de um CEP completo para preencher o endereço residencial. Um CEP não encontrado não impede o preenchimento manual.
// @Tags cep
// @Produce json
// @Param cep path string true "CEP com ou sem hífen (8 dígitos)"
// @Success 200 {object} models.CEPAddress "Endereço encontrado"
// @Failure 400 {object} ErrorResponse "CEP incompleto ou inválido"
// @Failure 404 {object} ErrorResponse "CEP não encontrado"
// @Failure 429 {object} ErrorResponse "Limite de consultas atingido"
// @Failure 502 {object} ErrorResponse "Falha na consulta ao serviço de CEP"
// @Router /cep/{cep} [get]
func LookupCEP(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "LookupCEP")
	defer span.End()

	cep := c.Param("cep")
	// Add CEP to span attributes
	span.SetAttributes(
		attribute.String("cep", cep),
		attribute.String("operation", "lookup_cep"),
	)

	if services.CEPServiceInstance == nil {
		observability.Logger().Error("cep service not initialized")
		serviceUnavailable(c, "CEP")
		return
	}

	// Look up from cache, falling back to ViaCEP
	addr, err := services.CEPServiceInstance.Lookup(ctx, cep)
	switch {
	case errors.Is(err, models.ErrInvalidCEP):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "CEP inválido", Code: CodeInvalidParameter})
		return
	case errors.Is(err, models.ErrCEPNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "CEP não encontrado", Code: CodeNotFound})
		return
	case errors.Is(err, models.ErrRateLimited):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Consulta de CEP temporariamente indisponível, preencha o endereço manualmente", Code: CodeRateLimited})
		return
	case err != nil:
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cep": cep})
		observability.Logger().Warn("cep lookup failed", zap.String("cep", cep), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Não foi possível consultar o CEP", Code: CodeUpstream})
		return
	}

	c.JSON(http.StatusOK, addr)
}
