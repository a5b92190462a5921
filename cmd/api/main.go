package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/handlers"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/middleware"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/aabb-jequie/app-inscricao/internal/utils/httpclient"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/aabb-jequie/app-inscricao/docs"
)

// @title           API de Inscrição AABB Jequié
// @version         1.0
// @description     Ficha de inscrição de sócios da AABB Jequié: envio da ficha, assistente em etapas, consulta de CEP e área administrativa com reimpressão de recibos.

// @contact.name   Secretaria AABB Jequié
// @contact.email  secretaria@aabbjequie.com.br

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name applications
// @tag.description Envio e validação da ficha de inscrição

// @tag.name cep
// @tag.description Consulta de endereço por CEP

// @tag.name wizard
// @tag.description Assistente de preenchimento em etapas

// @tag.name admin
// @tag.description Gestão das inscrições pela secretaria

// @tag.name health
// @tag.description Health check operations

func main() {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Logger.Sync()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	if err := config.InitMongoDB(); err != nil {
		logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	config.InitRedis()

	store := services.NewMongoApplicationStore(config.MongoDB, cfg.ApplicationCollection, logging.Logger.Named("application_store"))
	kv := services.NewRedisStore(config.Redis)

	var mailer services.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = services.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom, httpclient.New(cfg.NotificationTimeout))
	} else {
		logging.Logger.Warn("RESEND_API_KEY not set, emails will only be logged")
		mailer = services.NewLogMailer(logging.Logger.Named("mailer"))
	}

	// Background loops stop when the server shuts down.
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	services.InitApplicationService(store, mailer, logging.Logger)
	services.InitCEPService(kv, logging.Logger)
	services.InitWizardSessionService(kv, logging.Logger)
	services.InitSubmissionLimiter(bgCtx, logging.Logger)

	if cfg.JWTSecret == "" {
		logging.Logger.Warn("JWT_SECRET not set, admin endpoints will reject every request")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.New(corsConfig()),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(router)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	stopBackground()

	if err := config.MongoDB.Client().Disconnect(ctx); err != nil {
		logging.Logger.Error("failed to disconnect from MongoDB", zap.Error(err))
	}
	if err := config.Redis.Close(); err != nil {
		logging.Logger.Error("failed to close Redis", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}

// corsConfig allows the browser form to send the Authorization header used
// by the admin screens.
func corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowAllOrigins = true
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	return c
}
