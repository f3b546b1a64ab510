package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/controllers"
	"payment-admin/internal/integrations"
	"payment-admin/internal/services"
)

func runUserRouter(secureGroup *echo.Group, api integrations.PaymentAPI, workspaces *services.WorkspaceRegistry, logger *zap.Logger) {
	userService := services.NewUserService(api, workspaces, logger)
	userCtrl := controllers.NewUserController(userService, logger)

	users := secureGroup.Group("/users")
	users.GET("", userCtrl.List)
	users.POST("", userCtrl.Create)
	users.DELETE("/editor", userCtrl.CloseEditor)
	users.PUT("/:id", userCtrl.Update)
	users.DELETE("/:id", userCtrl.Delete)
}
