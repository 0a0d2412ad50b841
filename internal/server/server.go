// Package server defines the Server container that composes the service's
// shared dependencies and owns the HTTP server lifecycle.
//
// It owns:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the record validator
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/intake/internal/config"
	loggerPkg "github.com/deppfellow/intake/internal/logger"
	"github.com/deppfellow/intake/internal/validation"
)

// Server is the application container. It is not the HTTP server itself,
// which it keeps internally and starts in Start.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService may hold a nil New Relic application when the agent is
	// disabled.
	LoggerService *loggerPkg.LoggerService

	// Validator is shared by every request; it is immutable and safe for
	// concurrent use.
	Validator *validation.Validator

	httpServer *http.Server
}

// New constructs a Server. The HTTP server is configured separately with
// SetupHTTPServer.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService, opts ...validation.Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Validator:     validation.New(opts...),
	}, nil
}

// SetupHTTPServer configures the net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
// SetupHTTPServer must be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
