package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/intake/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not record intake:
// health, the docs UI and the static assets it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
