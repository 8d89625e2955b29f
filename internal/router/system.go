package router

import (
	"github.com/labstack/echo/v4"

	"github.com/planora/backend/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic:
// the plain-text liveness root and the dependency health status.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Liveness)
	r.GET("/status", h.Health.CheckHealth)
}
