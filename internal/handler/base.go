package handler

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/intake/internal/middleware"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/validation"
)

// Handler holds the shared dependencies of concrete handlers.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives a bound payload and returns
// the response body or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and describes it for
// observability.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error

	// GetOperation names the handler kind in logs.
	GetOperation() string

	// AddAttributes attaches New Relic attributes for the result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON with a fixed status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is set by the tracing middleware.
}

// handleRequest is the pipeline shared by all record endpoints:
//
//   - bind the body (400 when malformed)
//   - run the typed handler, which validates and normalizes the record
//     (validation.Failures become a 422 in the global error handler)
//   - log durations with the request-scoped logger and report them to New
//     Relic when a transaction is present
//   - write the response
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	// ---------------- Binding phase ------------------------------------------
	bindStart := time.Now()

	if err := validation.Bind(c, req); err != nil {
		bindDuration := time.Since(bindStart)

		logger.Warn().
			Err(err).
			Dur("bind_duration", bindDuration).
			Msg("request body could not be decoded")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("bind.status", "failed")
			txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
		}

		return err
	}

	bindDuration := time.Since(bindStart)
	if txn != nil {
		txn.AddAttribute("bind.status", "success")
		txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	var failures validation.Failures
	if errors.As(err, &failures) {
		crossField := failures.Has(validation.CrossField)

		logger.Warn().
			Err(err).
			Bool("cross_field", crossField).
			Dur("handler_duration", handlerDuration).
			Msg("record rejected")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.cross_field", crossField)
			txn.AddAttribute("validation.violations", len(failures))
		}

		return err
	}

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("bind_duration", bindDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed handler into an echo.HandlerFunc that binds each
// request into a newly allocated *T.
//
//	router.POST("/users", handler.Handle(h.Users.CreateUser, http.StatusOK))
func Handle[T any, Req interface {
	*T
	validation.Validatable
}, Res any](
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := Req(new(T))
		return handleRequest(c, req, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
