// Package router builds the echo router: global middleware, system routes
// and the record routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/intake/internal/handler"
	"github.com/deppfellow/intake/internal/middleware"
	"github.com/deppfellow/intake/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(middlewares.Global.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
	)

	registerSystemRoutes(router, h)
	registerRecordRoutes(router, h)

	return router
}
