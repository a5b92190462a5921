package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SubmitResponse is returned for an accepted application.
type SubmitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

// StepValidationResponse reports the outcome of a single step schema.
type StepValidationResponse struct {
	Valid      bool                `json:"valid"`
	Error      *schemas.Violation  `json:"error,omitempty"`
	Violations []schemas.Violation `json:"violations,omitempty"`
}

// readFormData reads a JSON form payload, rejecting raw card or bank keys
// before decoding.
func readFormData(c *gin.Context) (*models.FormData, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if err := schemas.CheckPaymentKeys(raw); err != nil {
		return nil, err
	}
	var data models.FormData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SubmitApplication godoc
// @Summary Enviar ficha de inscrição
// @Description Valida a ficha completa, grava a inscrição, gera o recibo em PDF e envia as confirmações por email ao associado e à secretaria. Dados brutos de cartão ou conta bancária são rejeitados.
// @Tags applications
// @Accept json
// @Produce json
// @Param data body models.FormData true "Dados da ficha de inscrição"
// @Success 200 {object} SubmitResponse "Inscrição recebida"
// @Failure 400 {object} ErrorResponse "Dados inválidos, com a lista de violações em details"
// @Failure 500 {object} ErrorResponse "Erro ao salvar inscrição"
// @Router /applications [post]
func SubmitApplication(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SubmitApplication")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "submit_application"),
		attribute.String("service", "application"),
	)
	logger := observability.Logger()

	// Parse input with tracing
	ctx, parseSpan := utils.TraceInputParsing(ctx, "application_payload")
	data, err := readFormData(c)
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		if isValidationError(err) {
			observability.ApplicationsSubmitted.WithLabelValues("invalid").Inc()
			logger.Warn("application payload carried raw payment data", zap.Error(err))
			c.JSON(http.StatusBadRequest, validationResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON inválido", Code: CodeInvalidJSON})
		return
	}
	parseSpan.End()

	if services.ApplicationServiceInstance == nil {
		logger.Error("application service not initialized")
		serviceUnavailable(c, "Application")
		return
	}

	// Validate, store and notify
	rec, err := services.ApplicationServiceInstance.Submit(ctx, data)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "submit"})
		switch {
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, validationResponse(err))
		default:
			logger.Error("failed to submit application",
				zap.String("cpf", observability.MaskCPF(data.CPF)),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao salvar inscrição", Code: CodePersistence})
		}
		return
	}

	// Add application ID to span attributes
	utils.AddSpanAttribute(span, "application_id", rec.ID)

	// Serialize response with tracing
	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, SubmitResponse{
		Success:       true,
		Message:       "Inscrição enviada com sucesso!",
		ApplicationID: rec.ID,
	})
	responseSpan.End()

	// Log total operation time
	logger.Debug("SubmitApplication completed",
		zap.String("application_id", rec.ID),
		zap.Duration("total_duration", time.Since(startTime)))
}

// ValidateStep godoc
// @Summary Validar uma etapa da ficha
// @Description Executa o esquema de uma única etapa do formulário (personal, residential, commercial, dependents, payment ou terms) e retorna a primeira violação.
// @Tags applications
// @Accept json
// @Produce json
// @Param step path string true "Etapa" Enums(personal, residential, commercial, dependents, payment, terms)
// @Param data body models.FormData true "Dados parciais da ficha"
// @Success 200 {object} StepValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Etapa desconhecida ou JSON inválido"
// @Router /applications/validate-step/{step} [post]
func ValidateStep(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateStep")
	defer span.End()

	// Resolve the step schema from the path
	step, err := schemas.ParseStep(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Etapa desconhecida", Code: CodeInvalidParameter})
		return
	}
	span.SetAttributes(attribute.String("step", string(step)))

	data, err := readFormData(c)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, validationResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON inválido", Code: CodeInvalidJSON})
		return
	}

	if services.ApplicationServiceInstance == nil {
		observability.Logger().Error("application service not initialized")
		serviceUnavailable(c, "Application")
		return
	}

	// Run only the requested step
	result := services.ApplicationServiceInstance.ValidateStep(ctx, step, data)
	c.JSON(http.StatusOK, StepValidationResponse{
		Valid:      result.Valid(),
		Error:      result.First(),
		Violations: result.Violations,
	})
}
