package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/ratecard/internal/config"
	"github.com/davidbz/ratecard/internal/http/middleware"
	"github.com/davidbz/ratecard/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Routes builds the router with every endpoint and the middleware chain.
func Routes(h *Handler, middlewares middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	if middlewares != nil {
		r.Use(middlewares)
	}

	r.Get("/health", h.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/models", h.HandleListModels)
		r.Post("/models/validate", h.HandleValidate)

		r.Post("/calculate", h.HandleCalculate)
		r.Post("/calculate/batch", h.HandleCalculateBatch)

		r.Route("/ratecards", func(r chi.Router) {
			r.Get("/", h.HandleListRateCards)
			r.Post("/", h.HandleCreateRateCard)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.HandleGetRateCard)
				r.Put("/", h.HandlePutRateCard)
				r.Delete("/", h.HandleDeleteRateCard)
				r.Post("/calculate", h.HandleQuote)
				r.Post("/batch", h.HandleQuoteBatch)
			})
		})
	})

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           Routes(s.handler, s.middlewares),
		ReadTimeout:       time.Duration(s.config.ReadTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
