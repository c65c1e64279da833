package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/edgewave/hlsgate/token"
)

const requestIDHeader = "X-Request-Id"

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.Requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()

		log.Debug().
			Str("request_id", w.Header().Get(requestIDHeader)).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msgf("%s %s", r.Method, r.URL.Path)
	})
}

// authenticate gates media routes on the exp and sig query parameters. The
// path handed to the authorizer is the escaped form as transmitted on the
// wire; the signature scheme applies no percent-decoding.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verdict := s.auth.Authorize(r.URL.EscapedPath(), r.URL.Query())
		s.metrics.Verdicts.WithLabelValues(verdict.String()).Inc()

		switch verdict {
		case token.Valid:
			next.ServeHTTP(w, r)
		case token.MissingParameters:
			writeError(w, http.StatusBadRequest, "missing_parameters")
		case token.Forbidden:
			writeError(w, http.StatusForbidden, "forbidden")
		case token.Expired:
			writeError(w, http.StatusGone, "expired")
		}
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": code}); err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}
