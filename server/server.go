// Package server wires the HTTP surface: routing, middleware, and handlers
// serving token-gated HLS manifests and segments.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/edgewave/hlsgate/config"
	"github.com/edgewave/hlsgate/metrics"
	"github.com/edgewave/hlsgate/token"
)

const shutdownTimeout = 10 * time.Second

// Server serves HLS media behind signed-URL authorization.
type Server struct {
	cfg     config.Config
	auth    *token.Authorizer
	metrics *metrics.Metrics
}

// New creates a Server. The authorizer carries the signing key and clock;
// the server itself holds no mutable state.
func New(cfg config.Config, auth *token.Authorizer, m *metrics.Metrics) *Server {
	return &Server{cfg: cfg, auth: auth, metrics: m}
}

// Router assembles the route tree. The health and metrics endpoints are
// unauthenticated; everything under /live requires a valid signed URL.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Get("/live/{file}", s.serveMedia)
	})
	return r
}

// Run starts the listener and blocks until ctx is canceled, then drains
// in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Address, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrapf(err, "server exited")
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
