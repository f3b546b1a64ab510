package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/services"
	"payment-admin/pkg/api"
	"payment-admin/pkg/middleware"
)

type AuthController struct {
	authService services.AuthServiceInterface
	cookies     *middleware.SessionCookies
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, cookies *middleware.SessionCookies, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

// Entry sends the home page to the dashboard or the login page.
func (ctrl *AuthController) Entry(c echo.Context) error {
	target := ctrl.authService.Entry(c.Request().Context(), ctrl.cookies.SessionID(c))
	return c.Redirect(http.StatusFound, target)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := bindAndValidate(c, &payload); err != nil {
		ctrl.logger.Debug("Login: invalid payload", zap.Error(err))
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	signedIn, err := ctrl.authService.Login(c.Request().Context(), ctrl.cookies.SessionID(c), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	ctrl.cookies.Set(c, signedIn.Cookie)
	return api.SuccessOne(c, http.StatusOK, "Connexion réussie", dto.MeDTO{User: signedIn.User})
}

// Logout works with or without a valid session; the remote API is not told.
func (ctrl *AuthController) Logout(c echo.Context) error {
	sessionID := ctrl.cookies.SessionID(c)
	if err := ctrl.authService.Logout(c.Request().Context(), sessionID); err != nil {
		ctrl.logger.Warn("Logout: credential not removed", zap.String("session", sessionID), zap.Error(err))
	}
	ctrl.cookies.Clear(c)
	return api.SuccessOne(c, http.StatusOK, "", api.RedirectBody{Redirect: loginPath})
}

func (ctrl *AuthController) Me(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return api.Redirect(c, loginPath)
	}
	return api.SuccessOne(c, http.StatusOK, "", dto.MeDTO{User: sess.User})
}
