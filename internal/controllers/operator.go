package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/services"
	"payment-admin/pkg/api"
)

type OperatorController struct {
	service services.OperatorServiceInterface
	logger  *zap.Logger
}

func NewOperatorController(service services.OperatorServiceInterface, logger *zap.Logger) *OperatorController {
	return &OperatorController{service: service, logger: logger}
}

// List mounts the screen, or moves to ?page when given.
func (ctrl *OperatorController) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	page, ok, err := pageParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	var screen services.OperatorScreen
	if ok {
		screen, err = ctrl.service.GoTo(c.Request().Context(), sess, page)
	} else {
		screen, err = ctrl.service.Mount(c.Request().Context(), sess)
	}
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *OperatorController) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	var payload dto.OperatorDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := ctrl.service.Create(c.Request().Context(), sess, payload)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *OperatorController) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	id, err := idParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.OperatorDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := ctrl.service.Update(c.Request().Context(), sess, id, payload)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *OperatorController) CloseEditor(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	screen, err := ctrl.service.CloseEditor(sess)
	return respondScreen(c, ctrl.logger, screen, err)
}
