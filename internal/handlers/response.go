package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
	"github.com/gin-gonic/gin"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodePersistence        = "PERSISTENCE_ERROR"
	CodeInvalidJSON        = "INVALID_JSON"
	CodeInvalidParameter   = "INVALID_PARAMETER"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeUpstream           = "UPSTREAM_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// validationResponse renders a validation failure with every violation.
func validationResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: "Dados inválidos", Code: CodeValidation}
	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		resp.Details = verr.Details()
	}
	return resp
}

func isValidationError(err error) bool {
	var verr *schemas.ValidationError
	return errors.As(err, &verr)
}

func serviceUnavailable(c *gin.Context, name string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: name + " service unavailable", Code: CodeServiceUnavailable})
}

// clubLocation is the timezone used for date filters.
func clubLocation() *time.Location {
	if config.AppConfig != nil && config.AppConfig.Location != nil {
		return config.AppConfig.Location
	}
	return time.UTC
}
