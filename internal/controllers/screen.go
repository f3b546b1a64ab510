package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/session"
	"payment-admin/pkg/api"
	apperrors "payment-admin/pkg/errors"
)

const loginPath = "/login"

func currentSession(c echo.Context) (session.Session, error) {
	return session.FromContext(c.Request().Context())
}

// pageParam reads ?page. ok is false when the parameter is absent.
func pageParam(c echo.Context) (page int, ok bool, err error) {
	raw := strings.TrimSpace(c.QueryParam("page"))
	if raw == "" {
		return 0, false, nil
	}
	page, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, apperrors.NewHttpError(http.StatusBadRequest, "Page invalide", err, nil)
	}
	return page, true, nil
}

func idParam(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "Identifiant manquant", apperrors.ErrBadRequest, nil)
	}
	return id, nil
}

// respondScreen answers a screen snapshot. A failed operation still carries
// the snapshot so the error banner and the editor state reach the browser.
func respondScreen[T any](c echo.Context, logger *zap.Logger, screen T, err error) error {
	if err == nil {
		return api.SuccessOne(c, http.StatusOK, "", screen)
	}
	if errors.Is(err, apperrors.ErrNoCredential) || errors.Is(err, apperrors.ErrWorkspaceNotAvailable) {
		return api.Redirect(c, loginPath)
	}

	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger.Error("screen operation failed", zap.Int("code", code), zap.Error(err))
	} else {
		logger.Debug("screen operation refused", zap.Int("code", code), zap.Error(err))
	}
	return api.FailureWith(c, code, apperrors.UserMessage(err, ""), screen)
}

// bindAndValidate fills payload from the body and runs the validator.
func bindAndValidate(c echo.Context, payload interface{}) error {
	if err := c.Bind(payload); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Format de données invalide", err, nil)
	}
	return c.Validate(payload)
}
