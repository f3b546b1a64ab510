package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"payment-admin/internal/integrations/paymentapi"
	"payment-admin/internal/repositories"
	"payment-admin/internal/routes"
	"payment-admin/pkg/api"
	"payment-admin/pkg/config"
	apperrors "payment-admin/pkg/errors"
	applogger "payment-admin/pkg/logger"
	appmiddleware "payment-admin/pkg/middleware"
	"payment-admin/pkg/service"
	"payment-admin/pkg/telemetry"
	"payment-admin/pkg/validation"
)

const serviceName = "payment-admin"

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	shutdownTelemetry := telemetry.Setup(serviceName, cfg.Tracing, logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erreur interne du serveur", err, nil)
				_ = api.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.RequestLogger(logger.Named("http")))
	e.Use(appmiddleware.InjectLogger(logger))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Validator = validation.New()

	credentials, closeStore := newCredentialStore(cfg, logger)
	defer closeStore()

	paymentAPI := paymentapi.New(cfg.PaymentAPI.BaseURL, cfg.PaymentAPI.Timeout, logger.Named("paymentapi"))
	jwtSvc := service.NewJWTService(cfg.Session.Secret, cfg.Session.TTL)

	routes.InitRouter(e, routes.Dependencies{
		API:         paymentAPI,
		Credentials: credentials,
		JWT:         jwtSvc,
		Config:      cfg,
		Loggers: &routes.Loggers{
			Main:    logger,
			Auth:    logger.Named("auth"),
			Screens: logger.Named("screens"),
		},
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      otelhttp.NewHandler(e, serviceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.PaymentAPI.Timeout * 4,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server started", zap.String("address", server.Addr), zap.String("payment_api", paymentAPI.BaseURL()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newCredentialStore(cfg *config.Config, logger *zap.Logger) (repositories.CredentialRepositoryInterface, func()) {
	if cfg.Session.Store == "memory" {
		logger.Warn("credentials kept in process memory; sessions end on restart")
		return repositories.NewMemoryCredentialRepository(cfg.Session.StorageKey), func() {}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("could not connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	return repositories.NewRedisCredentialRepository(redisClient, cfg.Session.StorageKey), func() { _ = redisClient.Close() }
}
