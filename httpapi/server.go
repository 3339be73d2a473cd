package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Server holds the dependencies every handler needs: a base logger and,
// once wired, a persistent edge store. POST /v1/flow currently snapshots
// its edges from the request body itself (see flow.go); Server exists so
// a bbolt-backed deployment can add a shared edgedb.BoltStore field without
// changing any handler signature.
type Server struct {
	logger *slog.Logger
	router chi.Router
}

// NewServer builds a ready-to-serve *Server. logger is the base logger;
// each request gets a child logger carrying its request ID.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{logger: logger}
	s.router = s.newRouter()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type contextKey int

const requestIDKey contextKey = iota

func (s *Server) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.assignRequestID)
	r.Get("/healthz", s.handleHealthz)
	r.Post("/v1/flow", s.handleFlow)
	return r
}

// assignRequestID stamps every request with a google/uuid request ID,
// echoed in the response header and stashed in the context so
// requestLogger can attach it to every log line for this request.
func (s *Server) assignRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger returns s.logger with the request's ID attached, falling
// back to the base logger if somehow called outside assignRequestID.
func (s *Server) requestLogger(r *http.Request) *slog.Logger {
	id, _ := r.Context().Value(requestIDKey).(string)
	if id == "" {
		return s.logger
	}
	return s.logger.With(slog.String("request_id", id))
}
