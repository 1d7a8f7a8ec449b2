package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"netadvisor/internal/domain"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
)

// Server exposes the advisor over HTTP: POST /query plus a liveness probe.
type Server struct {
	mux     *http.ServeMux
	advisor domain.Advisor
	logger  *zap.Logger
}

// NewServer creates an HTTP server with all routes registered.
func NewServer(advisor domain.Advisor, logger *zap.Logger) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		advisor: advisor,
		logger:  logger,
	}
	s.mux.HandleFunc("/query", s.handleQuery)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

// Handler returns the HTTP handler with middleware applied.
// Middleware order: recovery -> logging -> handler.
func (s *Server) Handler() http.Handler {
	return s.recoveryMiddleware(s.loggingMiddleware(s.mux))
}

// Run starts the server and blocks until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
