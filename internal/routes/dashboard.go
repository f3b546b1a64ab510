package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/controllers"
	"payment-admin/internal/integrations"
	"payment-admin/internal/services"
	"payment-admin/pkg/config"
)

func runDashboardRouter(secureGroup *echo.Group, api integrations.PaymentAPI, cfg config.DashboardConfig, logger *zap.Logger) {
	dashboardService := services.NewDashboardService(api, cfg.ChartSampleSize, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secureGroup.GET("/dashboard", dashboardCtrl.Overview)
}
