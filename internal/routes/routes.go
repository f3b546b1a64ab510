package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/integrations"
	"payment-admin/internal/repositories"
	"payment-admin/internal/services"
	"payment-admin/pkg/config"
	"payment-admin/pkg/middleware"
	"payment-admin/pkg/service"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Screens *zap.Logger
}

// Dependencies are the pieces InitRouter wires together.
type Dependencies struct {
	API         integrations.PaymentAPI
	Credentials repositories.CredentialRepositoryInterface
	JWT         service.JWTService
	Config      *config.Config
	Loggers     *Loggers
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	loggers := deps.Loggers
	cfg := deps.Config
	loggers.Main.Info("InitRouter: building routes")

	workspaces := services.NewWorkspaceRegistry(deps.API, cfg.Dashboard.PerPage, cfg.Session.TTL, loggers.Screens)
	authService := services.NewAuthService(deps.API, deps.Credentials, deps.JWT, workspaces, loggers.Auth)

	cookies := middleware.NewSessionCookies(deps.JWT, cfg.Session)
	authMW := middleware.NewAuthMiddleware(authService, cookies, loggers.Auth)

	api := e.Group("/api")
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(e, api, authService, cookies, loggers.Auth, authMW)
	runPageRouter(e, cfg.Server.StaticDir, loggers.Main, authMW)
	runDashboardRouter(secureGroup, deps.API, cfg.Dashboard, loggers.Screens)
	runOperatorRouter(secureGroup, deps.API, workspaces, loggers.Screens)
	runUserRouter(secureGroup, deps.API, workspaces, loggers.Screens)
	runAPITokenRouter(secureGroup, deps.API, workspaces, cfg.Dashboard, loggers.Screens)
	runTransactionRouter(secureGroup, deps.API, workspaces, cfg.Dashboard, loggers.Screens)

	loggers.Main.Info("InitRouter: routes ready")
}
