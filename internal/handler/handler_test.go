package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/intake/internal/config"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/service"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(&config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.DefaultServerConfig(),
		Observability: config.DefaultObservabilityConfig(),
	}, &logger, nil)
	require.NoError(t, err)

	return NewHandlers(s, service.NewServices(s))
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.Health.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.NotEmpty(t, body["uptime"])
}

func TestOpenAPIHandler_ServeOpenAPIUI(t *testing.T) {
	h := newTestHandlers(t)

	t.Run("missing template", func(t *testing.T) {
		t.Chdir(t.TempDir())

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())
		assert.Error(t, h.OpenAPI.ServeOpenAPIUI(c))
	})

	t.Run("serves the template", func(t *testing.T) {
		t.Chdir("../..")

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)

		require.NoError(t, h.OpenAPI.ServeOpenAPIUI(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), "/static/openapi.json")
	})
}
