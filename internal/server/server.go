// Package server wires the collection service's HTTP surface: routes,
// middleware, and the serve/shutdown lifecycle.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"jobtrack/internal/server/handlers"
	"jobtrack/internal/server/middleware"
)

// Server is the HTTP server for the collection API.
type Server struct {
	httpServer *http.Server
}

// Options carries the tunables the server takes from configuration.
type Options struct {
	// Requests per second per client IP; 0 disables limiting.
	RateLimitPerSecond float64
	RateLimitBurst     int

	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
}

// New creates a new collection server.
func New(addr string, store handlers.StoreFactory, logger *slog.Logger, opts Options) *Server {
	h := handlers.New(store, logger)
	rateMW := middleware.RateLimitMiddleware(opts.RateLimitPerSecond, opts.RateLimitBurst)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /jobs", h.ListJobs)
	mux.HandleFunc("POST /jobs", h.CreateJob)
	mux.HandleFunc("PUT /jobs/{id}", h.UpdateJob)
	mux.HandleFunc("DELETE /jobs/{id}", h.DeleteJob)

	mux.HandleFunc("GET /users", h.ListUsers)
	mux.HandleFunc("POST /users", h.CreateUser)
	mux.HandleFunc("GET /users/{id}", h.GetUser)
	mux.HandleFunc("PUT /users/{id}", h.UpdateUser)

	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}

	handler := middleware.RequestIDMiddleware(rateMW(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Run starts the HTTP server. It blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutDownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return s.Shutdown(shutDownCtx)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
