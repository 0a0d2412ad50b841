package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/intake/internal/middleware"
	"github.com/deppfellow/intake/internal/server"
)

// HealthHandler serves the liveness endpoint used by monitors and load
// balancers. The service has no dependencies, so answering at all means it
// is healthy.
type HealthHandler struct {
	Handler
	startedAt time.Time
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		startedAt: time.Now(),
	}
}

// CheckHealth reports status, time, environment and uptime.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Msg("health check passed")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	})
}
