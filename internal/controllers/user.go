package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/services"
	"payment-admin/pkg/api"
)

type UserController struct {
	service services.UserServiceInterface
	logger  *zap.Logger
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{service: service, logger: logger}
}

func (ctrl *UserController) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	page, ok, err := pageParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	var screen services.UserScreen
	if ok {
		screen, err = ctrl.service.GoTo(c.Request().Context(), sess, page)
	} else {
		screen, err = ctrl.service.Mount(c.Request().Context(), sess)
	}
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *UserController) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	var payload dto.CreateUserDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := ctrl.service.Create(c.Request().Context(), sess, payload)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *UserController) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	id, err := idParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateUserDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := ctrl.service.Update(c.Request().Context(), sess, id, payload)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *UserController) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	id, err := idParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := ctrl.service.Delete(c.Request().Context(), sess, id)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *UserController) CloseEditor(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	screen, err := ctrl.service.CloseEditor(sess)
	return respondScreen(c, ctrl.logger, screen, err)
}
