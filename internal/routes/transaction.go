package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/controllers"
	"payment-admin/internal/integrations"
	"payment-admin/internal/services"
	"payment-admin/pkg/config"
)

func runTransactionRouter(secureGroup *echo.Group, api integrations.PaymentAPI, workspaces *services.WorkspaceRegistry, cfg config.DashboardConfig, logger *zap.Logger) {
	transactionService := services.NewTransactionService(api, workspaces, cfg.SelectPageSize, cfg.ExportPageSize, cfg.ExportMaxPages, logger)
	transactionCtrl := controllers.NewTransactionController(transactionService, logger)

	transactions := secureGroup.Group("/transactions")
	transactions.GET("", transactionCtrl.List)
	transactions.PUT("/filters", transactionCtrl.SetFilters)
	transactions.DELETE("/filters", transactionCtrl.ClearFilters)
	transactions.GET("/operators", transactionCtrl.Operators)
	transactions.GET("/export", transactionCtrl.Export)
}
