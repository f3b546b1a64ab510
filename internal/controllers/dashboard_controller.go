package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/services"
	"payment-admin/pkg/api"
)

type DashboardController struct {
	service services.DashboardServiceInterface
	logger  *zap.Logger
}

func NewDashboardController(service services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{service: service, logger: logger}
}

func (ctrl *DashboardController) Overview(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	return api.SuccessOne(c, http.StatusOK, "", ctrl.service.Overview(c.Request().Context(), sess))
}
