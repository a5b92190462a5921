package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/aabb-jequie/app-inscricao/internal/wizard"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// WizardErrorResponse is returned when a transition is refused. Session
// carries the saved state, including lastError, when one exists.
type WizardErrorResponse struct {
	Error   string                  `json:"error"`
	Code    string                  `json:"code"`
	Details []string                `json:"details,omitempty"`
	Session *services.WizardSession `json:"session,omitempty"`
}

// wizardTransition matches the method expressions of WizardSessionService.
type wizardTransition func(s *services.WizardSessionService, ctx context.Context, id string) (*services.WizardSession, error)

// runWizard executes a session transition and writes the reply.
func runWizard(c *gin.Context, name string, fn wizardTransition) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), name)
	defer span.End()

	id := c.Param("id")
	// Add session ID to span attributes
	span.SetAttributes(attribute.String("session_id", id))

	if services.WizardSessionServiceInstance == nil {
		observability.Logger().Error("wizard session service not initialized")
		serviceUnavailable(c, "Wizard session")
		return
	}

	// Run the transition against the stored session
	session, err := fn(services.WizardSessionServiceInstance, ctx, id)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"session_id": id})
		writeWizardError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func writeWizardError(c *gin.Context, session *services.WizardSession, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, WizardErrorResponse{Error: "Sessão não encontrada", Code: CodeNotFound})
	case errors.Is(err, models.ErrForbiddenPaymentKey):
		v := validationResponse(err)
		c.JSON(http.StatusBadRequest, WizardErrorResponse{Error: v.Error, Code: v.Code, Details: v.Details})
	// The step stays put; the saved session carries lastError
	case isValidationError(err):
		v := validationResponse(err)
		c.JSON(http.StatusUnprocessableEntity, WizardErrorResponse{Error: v.Error, Code: v.Code, Details: v.Details, Session: session})
	// Transition not allowed from the current state
	case errors.Is(err, wizard.ErrSubmitted),
		errors.Is(err, wizard.ErrSubmissionInFlight),
		errors.Is(err, wizard.ErrLastStep),
		errors.Is(err, wizard.ErrNotLastStep),
		errors.Is(err, wizard.ErrTermsClosed):
		c.JSON(http.StatusConflict, WizardErrorResponse{Error: err.Error(), Code: CodeConflict, Session: session})
	case errors.Is(err, models.ErrPersistence):
		c.JSON(http.StatusInternalServerError, WizardErrorResponse{Error: "Erro ao salvar inscrição", Code: CodePersistence, Session: session})
	default:
		observability.Logger().Error("wizard transition failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, WizardErrorResponse{Error: "Erro interno", Code: CodeInternal, Session: session})
	}
}

// CreateWizardSession godoc
// @Summary Iniciar assistente de inscrição
// @Description Cria uma sessão do assistente na primeira etapa. O estado fica guardado no servidor e expira após WIZARD_SESSION_TTL.
// @Tags wizard
// @Produce json
// @Success 201 {object} services.WizardSession "Sessão criada"
// @Failure 500 {object} ErrorResponse "Erro ao criar sessão"
// @Router /wizard [post]
func CreateWizardSession(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateWizardSession")
	defer span.End()

	if services.WizardSessionServiceInstance == nil {
		observability.Logger().Error("wizard session service not initialized")
		serviceUnavailable(c, "Wizard session")
		return
	}

	session, err := services.WizardSessionServiceInstance.Create(ctx)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		observability.Logger().Error("failed to create wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao criar sessão", Code: CodeInternal})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetWizardSession godoc
// @Summary Obter sessão do assistente
// @Tags wizard
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} services.WizardSession
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada ou expirada"
// @Router /wizard/{id} [get]
func GetWizardSession(c *gin.Context) {
	runWizard(c, "GetWizardSession", func(s *services.WizardSessionService, ctx context.Context, id string) (*services.WizardSession, error) {
		return s.Get(ctx, id)
	})
}

// UpdateWizardData godoc
// @Summary Atualizar dados da ficha
// @Description Mescla os campos enviados (camelCase) nos dados da sessão. Uma lista de dependentes substitui a anterior. Dados brutos de cartão ou conta bancária são rejeitados.
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param data body models.FormData true "Campos a atualizar"
// @Success 200 {object} services.WizardSession
// @Failure 400 {object} WizardErrorResponse "JSON inválido ou dados de pagamento proibidos"
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada"
// @Failure 409 {object} WizardErrorResponse "Ficha já enviada ou envio em andamento"
// @Router /wizard/{id}/data [patch]
func UpdateWizardData(c *gin.Context) {
	// Parse input before touching the session
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil || !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, WizardErrorResponse{Error: "JSON inválido", Code: CodeInvalidJSON})
		return
	}
	runWizard(c, "UpdateWizardData", func(s *services.WizardSessionService, ctx context.Context, id string) (*services.WizardSession, error) {
		return s.UpdateData(ctx, id, raw)
	})
}

// WizardNext godoc
// @Summary Avançar etapa
// @Description Valida a etapa atual e avança. Em caso de erro a sessão permanece na etapa com o primeiro erro em lastError.
// @Tags wizard
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} services.WizardSession
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada"
// @Failure 409 {object} WizardErrorResponse "Já está na última etapa ou ficha já enviada"
// @Failure 422 {object} WizardErrorResponse "Etapa inválida"
// @Router /wizard/{id}/next [post]
func WizardNext(c *gin.Context) {
	runWizard(c, "WizardNext", (*services.WizardSessionService).Next)
}

// WizardBack godoc
// @Summary Voltar etapa
// @Tags wizard
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} services.WizardSession
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada"
// @Failure 409 {object} WizardErrorResponse "Ficha já enviada ou envio em andamento"
// @Router /wizard/{id}/back [post]
func WizardBack(c *gin.Context) {
	runWizard(c, "WizardBack", (*services.WizardSessionService).Back)
}

// WizardSubmitIntent godoc
// @Summary Solicitar envio
// @Description Valida a etapa de pagamento e abre o termo de aceite. Disponível apenas na última etapa.
// @Tags wizard
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} services.WizardSession
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada"
// @Failure 409 {object} WizardErrorResponse "Fora da última etapa"
// @Failure 422 {object} WizardErrorResponse "Pagamento inválido"
// @Router /wizard/{id}/submit-intent [post]
func WizardSubmitIntent(c *gin.Context) {
	runWizard(c, "WizardSubmitIntent", (*services.WizardSessionService).SubmitIntent)
}

// WizardCancelTerms godoc
// @Summary Fechar termo de aceite
// @Tags wizard
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} services.WizardSession
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada"
// @Router /wizard/{id}/cancel-terms [post]
func WizardCancelTerms(c *gin.Context) {
	runWizard(c, "WizardCancelTerms", (*services.WizardSessionService).CancelTerms)
}

// WizardConfirm godoc
// @Summary Confirmar envio
// @Description Registra os aceites do estatuto e do uso de imagem e envia a ficha. Apenas um envio por sessão pode estar em andamento.
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param consent body wizard.Consent true "Aceites"
// @Success 200 {object} services.WizardSession "Ficha enviada"
// @Failure 400 {object} WizardErrorResponse "JSON inválido"
// @Failure 404 {object} WizardErrorResponse "Sessão não encontrada"
// @Failure 409 {object} WizardErrorResponse "Termo fechado, envio em andamento ou ficha já enviada"
// @Failure 422 {object} WizardErrorResponse "Aceites ausentes ou ficha rejeitada"
// @Failure 500 {object} WizardErrorResponse "Erro ao salvar inscrição"
// @Router /wizard/{id}/confirm [post]
func WizardConfirm(c *gin.Context) {
	var consent wizard.Consent
	// Parse consent before locking the session
	if err := c.ShouldBindJSON(&consent); err != nil {
		c.JSON(http.StatusBadRequest, WizardErrorResponse{Error: "JSON inválido", Code: CodeInvalidJSON})
		return
	}
	runWizard(c, "WizardConfirm", func(s *services.WizardSessionService, ctx context.Context, id string) (*services.WizardSession, error) {
		return s.Confirm(ctx, id, consent)
	})
}
