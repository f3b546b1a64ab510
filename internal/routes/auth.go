package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/controllers"
	"payment-admin/internal/services"
	"payment-admin/pkg/middleware"
)

func runAuthRouter(e *echo.Echo, api *echo.Group, authService services.AuthServiceInterface, cookies *middleware.SessionCookies, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	authCtrl := controllers.NewAuthController(authService, cookies, logger)

	e.GET("/", authCtrl.Entry)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
