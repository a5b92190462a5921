package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/middleware"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/receipt"
	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ApplicationListResponse is a date-filtered list of applications.
type ApplicationListResponse struct {
	Data  []models.ApplicationRecord `json:"data"`
	Total int                        `json:"total"`
}

func adminLogger(c *gin.Context) *logging.SafeLogger {
	return observability.Logger().With(zap.String("actor", middleware.Actor(c)))
}

// ListApplications godoc
// @Summary Listar inscrições
// @Description Lista as inscrições da mais recente para a mais antiga, opcionalmente filtradas por data de envio (inclusive, no fuso do clube).
// @Tags admin
// @Produce json
// @Param start query string false "Data inicial (YYYY-MM-DD)"
// @Param end query string false "Data final (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {object} ApplicationListResponse
// @Failure 400 {object} ErrorResponse "Intervalo de datas inválido"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 500 {object} ErrorResponse "Erro interno"
// @Router /admin/applications [get]
func ListApplications(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListApplications")
	defer span.End()

	// Parse date range with tracing
	ctx, parseSpan := utils.TraceInputParsing(ctx, "date_range")
	filter, err := models.NewListFilter(c.Query("start"), c.Query("end"), clubLocation())
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{"start": c.Query("start"), "end": c.Query("end")})
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Intervalo de datas inválido", Code: CodeInvalidParameter, Details: []string{err.Error()}})
		return
	}
	parseSpan.End()

	if services.ApplicationServiceInstance == nil {
		serviceUnavailable(c, "Application")
		return
	}

	// Get applications from database
	records, err := services.ApplicationServiceInstance.List(ctx, filter)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		adminLogger(c).Error("failed to list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao listar inscrições", Code: CodeInternal})
		return
	}
	// Add result count to span attributes
	span.SetAttributes(attribute.Int("results", len(records)))

	c.JSON(http.StatusOK, ApplicationListResponse{Data: records, Total: len(records)})
}

// GetApplication godoc
// @Summary Obter inscrição
// @Tags admin
// @Produce json
// @Param id path string true "ID da inscrição"
// @Security BearerAuth
// @Success 200 {object} models.ApplicationRecord
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno"
// @Router /admin/applications/{id} [get]
func GetApplication(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetApplication")
	defer span.End()

	id := c.Param("id")
	// Add application ID to span attributes
	span.SetAttributes(attribute.String("application_id", id))

	if services.ApplicationServiceInstance == nil {
		serviceUnavailable(c, "Application")
		return
	}

	rec, err := services.ApplicationServiceInstance.Get(ctx, id)
	if err != nil {
		writeAdminError(c, err, "failed to get application")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateApplication godoc
// @Summary Editar inscrição
// @Description Altera os campos permitidos de uma inscrição. O registro editado precisa continuar válido pela ficha completa. Campos desconhecidos são rejeitados.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID da inscrição"
// @Param update body models.ApplicationUpdate true "Campos a alterar"
// @Security BearerAuth
// @Success 200 {object} models.ApplicationRecord
// @Failure 400 {object} ErrorResponse "JSON inválido, campo desconhecido, edição vazia ou dados inválidos"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno"
// @Router /admin/applications/{id} [patch]
func UpdateApplication(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateApplication")
	defer span.End()

	id := c.Param("id")
	// Add application ID to span attributes
	span.SetAttributes(attribute.String("application_id", id))

	// Parse input with tracing
	_, parseSpan := utils.TraceInputParsing(ctx, "application_update")
	var upd models.ApplicationUpdate
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON inválido", Code: CodeInvalidJSON, Details: []string{err.Error()}})
		return
	}
	parseSpan.End()

	if services.ApplicationServiceInstance == nil {
		serviceUnavailable(c, "Application")
		return
	}

	// Apply, validate and store the edit
	rec, err := services.ApplicationServiceInstance.Update(ctx, id, &upd)
	if err != nil {
		writeAdminError(c, err, "failed to update application")
		return
	}
	adminLogger(c).Info("application edited", zap.String("application_id", id))
	c.JSON(http.StatusOK, rec)
}

// DeleteApplication godoc
// @Summary Excluir inscrição
// @Tags admin
// @Param id path string true "ID da inscrição"
// @Security BearerAuth
// @Success 204 "Inscrição excluída"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno"
// @Router /admin/applications/{id} [delete]
func DeleteApplication(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteApplication")
	defer span.End()

	id := c.Param("id")
	// Add application ID to span attributes
	span.SetAttributes(attribute.String("application_id", id))

	if services.ApplicationServiceInstance == nil {
		serviceUnavailable(c, "Application")
		return
	}

	if err := services.ApplicationServiceInstance.Delete(ctx, id); err != nil {
		writeAdminError(c, err, "failed to delete application")
		return
	}
	adminLogger(c).Info("application deleted", zap.String("application_id", id))
	c.Status(http.StatusNoContent)
}

// GetApplicationReceipt godoc
// @Summary Reimprimir recibo
// @Description Gera novamente o recibo da inscrição em PDF ou HTML, em uma ou duas vias lado a lado.
// @Tags admin
// @Produce application/pdf
// @Produce text/html
// @Param id path string true "ID da inscrição"
// @Param format query string false "Formato" Enums(pdf, html) default(pdf)
// @Param layout query string false "Vias" Enums(single, double) default(double)
// @Security BearerAuth
// @Success 200 {file} file "Recibo"
// @Failure 400 {object} ErrorResponse "Formato ou layout inválido"
// @Failure 401 {object} ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso negado"
// @Failure 404 {object} ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} ErrorResponse "Erro ao gerar recibo"
// @Router /admin/applications/{id}/receipt [get]
func GetApplicationReceipt(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetApplicationReceipt")
	defer span.End()

	id := c.Param("id")
	// Add application ID to span attributes
	span.SetAttributes(attribute.String("application_id", id))

	// Parse format and layout
	format, err := receipt.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Formato inválido", Code: CodeInvalidParameter})
		return
	}
	layout, err := receipt.ParseLayout(c.Query("layout"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Layout inválido", Code: CodeInvalidParameter})
		return
	}

	if services.ApplicationServiceInstance == nil {
		serviceUnavailable(c, "Application")
		return
	}

	out, filename, err := services.ApplicationServiceInstance.Receipt(ctx, id, format, layout)
	if err != nil {
		writeAdminError(c, err, "failed to render receipt")
		return
	}

	// HTML opens in the browser for printing, PDF downloads
	disposition := "attachment"
	if format == receipt.FormatHTML {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, filename))
	c.Data(http.StatusOK, receipt.ContentType(format), out)
}

func writeAdminError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, models.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Inscrição não encontrada", Code: CodeNotFound})
	case errors.Is(err, models.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nenhum campo para alterar", Code: CodeInvalidParameter})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, validationResponse(err))
	default:
		adminLogger(c).Error(msg, zap.String("application_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno", Code: CodeInternal})
	}
}
