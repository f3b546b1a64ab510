package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/controllers"
	"payment-admin/internal/integrations"
	"payment-admin/internal/services"
	"payment-admin/pkg/config"
)

func runAPITokenRouter(secureGroup *echo.Group, api integrations.PaymentAPI, workspaces *services.WorkspaceRegistry, cfg config.DashboardConfig, logger *zap.Logger) {
	tokenService := services.NewAPITokenService(api, workspaces, cfg.SelectPageSize, logger)
	tokenCtrl := controllers.NewAPITokenController(tokenService, logger)

	tokens := secureGroup.Group("/tokens")
	tokens.GET("", tokenCtrl.List)
	tokens.GET("/operators", tokenCtrl.Operators)
	tokens.POST("", tokenCtrl.Create)
	tokens.DELETE("/editor", tokenCtrl.CloseEditor)
	tokens.POST("/:id/activate", tokenCtrl.Activate)
	tokens.POST("/:id/deactivate", tokenCtrl.Deactivate)
	tokens.DELETE("/:id", tokenCtrl.Delete)
}
