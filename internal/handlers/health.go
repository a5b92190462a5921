package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck godoc
// @Summary Verificar saúde do serviço
// @Description Verifica a conexão com MongoDB e Redis. MongoDB fora do ar torna o serviço indisponível; Redis fora do ar apenas degrada o cache de CEP e as sessões do assistente.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Serviço saudável ou degradado"
// @Failure 503 {object} HealthResponse "Serviço indisponível"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "health_check"))

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	// Check MongoDB with tracing
	_, mongoSpan := utils.TraceExternalService(ctx, "mongodb", "ping")
	if config.MongoDB == nil {
		health.Services["mongodb"] = "unavailable"
		health.Status = "unhealthy"
	} else if err := config.MongoDB.Client().Ping(ctx, nil); err != nil {
		utils.RecordErrorInSpan(mongoSpan, err, map[string]interface{}{"service.name": "mongodb"})
		observability.Logger().Error("mongodb health check failed", zap.Error(err))
		health.Services["mongodb"] = "unhealthy"
		health.Status = "unhealthy"
	} else {
		health.Services["mongodb"] = "healthy"
	}
	mongoSpan.End()

	// Check Redis with tracing
	_, redisSpan := utils.TraceExternalService(ctx, "redis", "ping")
	if config.Redis == nil {
		health.Services["redis"] = "unavailable"
	} else if err := config.Redis.Ping(ctx).Err(); err != nil {
		utils.RecordErrorInSpan(redisSpan, err, map[string]interface{}{"service.name": "redis"})
		observability.Logger().Warn("redis health check failed", zap.Error(err))
		health.Services["redis"] = "unhealthy"
	} else {
		health.Services["redis"] = "healthy"
	}
	redisSpan.End()

	// Without Redis the CEP cache and wizard sessions are down
	if health.Status == "healthy" && health.Services["redis"] != "healthy" {
		health.Status = "degraded"
	}

	if health.Status == "unhealthy" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
