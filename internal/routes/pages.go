package routes

import (
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"payment-admin/pkg/middleware"
)

// runPageRouter serves the front-end bundle. Pages under /dashboard go
// through the session gate; a refused navigation is answered with a 303 to
// the login page.
func runPageRouter(e *echo.Echo, staticDir string, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	if staticDir == "" {
		return
	}
	root, err := filepath.Abs(staticDir)
	if err != nil {
		logger.Fatal("could not resolve static directory", zap.Error(err))
	}

	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  root,
		Index: "index.html",
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api/") || p == "/" || isDashboardPage(p)
		},
	}))

	pages := e.Group("/dashboard", authMW.Auth)
	pages.Use(echomw.StaticWithConfig(echomw.StaticConfig{Root: root, Index: "index.html"}))
}

func isDashboardPage(p string) bool {
	return p == "/dashboard" || strings.HasPrefix(p, "/dashboard/")
}
