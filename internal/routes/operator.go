package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/controllers"
	"payment-admin/internal/integrations"
	"payment-admin/internal/services"
)

func runOperatorRouter(secureGroup *echo.Group, api integrations.PaymentAPI, workspaces *services.WorkspaceRegistry, logger *zap.Logger) {
	operatorService := services.NewOperatorService(api, workspaces, logger)
	operatorCtrl := controllers.NewOperatorController(operatorService, logger)

	operators := secureGroup.Group("/operators")
	operators.GET("", operatorCtrl.List)
	operators.POST("", operatorCtrl.Create)
	operators.DELETE("/editor", operatorCtrl.CloseEditor)
	operators.PUT("/:id", operatorCtrl.Update)
}
