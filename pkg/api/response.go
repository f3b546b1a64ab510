package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "payment-admin/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type RedirectBody struct {
	Redirect string `json:"redirect"`
}

// SuccessOne answers a single object.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// FailureWith answers an error status while still carrying a body, so the
// browser keeps the screen state alongside the message.
func FailureWith[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  false,
		Message: message,
		Body:    data,
	})
}

// Redirect tells the browser where to navigate without showing an error.
func Redirect(c echo.Context, target string) error {
	return c.JSON(http.StatusUnauthorized, Response[RedirectBody]{
		Status: false,
		Body:   RedirectBody{Redirect: target},
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.StatusCode(err)
	msg := apperrors.UserMessage(err, "")

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) && httpErr.Err != nil {
		logger.Error("HTTP Error",
			zap.Int("code", httpErr.Code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
		)
	} else if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err))
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
