package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"payment-admin/pkg/config"
	"payment-admin/pkg/service"
)

// SessionCookies reads and writes the signed dashboard session cookie.
type SessionCookies struct {
	jwtSvc service.JWTService
	cfg    config.SessionConfig
}

func NewSessionCookies(jwtSvc service.JWTService, cfg config.SessionConfig) *SessionCookies {
	return &SessionCookies{jwtSvc: jwtSvc, cfg: cfg}
}

// SessionID returns the session id carried by the request, or "" when the
// cookie is missing or does not verify.
func (s *SessionCookies) SessionID(c echo.Context) string {
	cookie, err := c.Cookie(s.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	claims, err := s.jwtSvc.Validate(cookie.Value)
	if err != nil {
		return ""
	}
	return claims.SessionID()
}

func (s *SessionCookies) Set(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(s.jwtSvc.TTL()),
		MaxAge:   int(s.jwtSvc.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionCookies) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
