package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payment-admin/internal/session"
	"payment-admin/pkg/api"
)

const loginPath = "/login"

// SessionGate is the check run before every protected route.
type SessionGate interface {
	Gate(ctx context.Context, sessionID string) (session.GateResult, error)
}

type AuthMiddleware struct {
	gate    SessionGate
	cookies *SessionCookies
	logger  *zap.Logger
}

func NewAuthMiddleware(gate SessionGate, cookies *SessionCookies, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		gate:    gate,
		cookies: cookies,
		logger:  logger,
	}
}

// Auth lets the request through with the session in its context, or sends
// the browser to the login page. API calls get a 401 carrying the target;
// page navigation gets a 303.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := m.cookies.SessionID(c)

		res, err := m.gate.Gate(c.Request().Context(), sessionID)
		if err != nil {
			m.logger.Error("AuthMiddleware: session gate failed", zap.Error(err))
			return api.ErrorResponse(c, err, m.logger)
		}

		if res.Redirect {
			m.logger.Debug("AuthMiddleware: redirect to login", zap.String("path", c.Request().URL.Path))
			if sessionID != "" {
				m.cookies.Clear(c)
			}
			if strings.HasPrefix(c.Request().URL.Path, "/api/") {
				return api.Redirect(c, loginPath)
			}
			return c.Redirect(http.StatusSeeOther, loginPath)
		}

		ctx := session.WithSession(c.Request().Context(), res.Session)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
