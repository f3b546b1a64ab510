package controllers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/services"
	"payment-admin/internal/session"
	"payment-admin/pkg/api"
)

type APITokenController struct {
	service services.APITokenServiceInterface
	logger  *zap.Logger
}

func NewAPITokenController(service services.APITokenServiceInterface, logger *zap.Logger) *APITokenController {
	return &APITokenController{service: service, logger: logger}
}

func (ctrl *APITokenController) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	page, ok, err := pageParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	var screen services.APITokenScreen
	if ok {
		screen, err = ctrl.service.GoTo(c.Request().Context(), sess, page)
	} else {
		screen, err = ctrl.service.Mount(c.Request().Context(), sess)
	}
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *APITokenController) Operators(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	return api.SuccessOne(c, http.StatusOK, "", ctrl.service.OperatorChoices(c.Request().Context(), sess))
}

// Create answers the plaintext token and signature once; they are not
// kept anywhere.
func (ctrl *APITokenController) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	var payload dto.CreateAPITokenDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	created, err := ctrl.service.Create(c.Request().Context(), sess, payload)
	c.Response().Header().Set("Cache-Control", "no-store")
	return respondScreen(c, ctrl.logger, created, err)
}

func (ctrl *APITokenController) Activate(c echo.Context) error {
	return ctrl.lifecycle(c, ctrl.service.Activate)
}

func (ctrl *APITokenController) Deactivate(c echo.Context) error {
	return ctrl.lifecycle(c, ctrl.service.Deactivate)
}

func (ctrl *APITokenController) Delete(c echo.Context) error {
	return ctrl.lifecycle(c, ctrl.service.Delete)
}

func (ctrl *APITokenController) CloseEditor(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	screen, err := ctrl.service.CloseEditor(sess)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *APITokenController) lifecycle(c echo.Context, action tokenAction) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	id, err := idParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := action(c.Request().Context(), sess, id)
	return respondScreen(c, ctrl.logger, screen, err)
}

type tokenAction func(ctx context.Context, sess session.Session, id string) (services.APITokenScreen, error)
