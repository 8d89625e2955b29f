// Package router initializes the HTTP router (using echo).
//
// It registers the middleware stack and defines the API routes, mapping
// each path to its handler.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/planora/backend/internal/handler"
	"github.com/planora/backend/internal/middleware"
)

// New builds the echo instance: global error handler, middleware chain,
// and all routes. The returned echo.Echo is an http.Handler ready to be
// mounted on the server.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: recovery outermost, then correlation ID, then the
	// request-scoped logger that depends on it.
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
