package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/services"
	"payment-admin/pkg/api"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TransactionController struct {
	service services.TransactionServiceInterface
	logger  *zap.Logger
}

func NewTransactionController(service services.TransactionServiceInterface, logger *zap.Logger) *TransactionController {
	return &TransactionController{service: service, logger: logger}
}

func (ctrl *TransactionController) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	page, ok, err := pageParam(c)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	var screen services.TransactionScreen
	if ok {
		screen, err = ctrl.service.GoTo(c.Request().Context(), sess, page)
	} else {
		screen, err = ctrl.service.Mount(c.Request().Context(), sess)
	}
	return respondScreen(c, ctrl.logger, screen, err)
}

// SetFilters replaces the whole filter set and goes back to page 1.
func (ctrl *TransactionController) SetFilters(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	var filter dto.TransactionFilter
	if err := bindAndValidate(c, &filter); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	screen, err := ctrl.service.SetFilter(c.Request().Context(), sess, filter)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *TransactionController) ClearFilters(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	screen, err := ctrl.service.ClearFilter(c.Request().Context(), sess)
	return respondScreen(c, ctrl.logger, screen, err)
}

func (ctrl *TransactionController) Operators(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	return api.SuccessOne(c, http.StatusOK, "", ctrl.service.OperatorChoices(c.Request().Context(), sess))
}

// Export downloads the filtered transactions as an XLSX workbook.
func (ctrl *TransactionController) Export(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}

	f, err := ctrl.service.Export(c.Request().Context(), sess)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
