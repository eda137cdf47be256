package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/stategate/internal/logging"
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/aretw0/stategate/pkg/observability"
	"github.com/aretw0/stategate/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// AuthorizeRequest is the body of POST .../authorize.
type AuthorizeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AuthorizeResponse reports the outcome of an authorization.
type AuthorizeResponse struct {
	Allowed bool   `json:"allowed"`
	From    string `json:"from"`
	To      string `json:"to"`
	Forced  bool   `json:"forced,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes a registry over HTTP.
type Server struct {
	Gates   *registry.Registry
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics records authorizations and mounts /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.Metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// NewHandler creates a new HTTP handler for the registry.
func NewHandler(gates *registry.Registry, opts ...Option) http.Handler {
	s := &Server{Gates: gates, Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", s.GetHealth)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Route("/gates", func(r chi.Router) {
		r.Get("/", s.ListGates)
		r.Get("/{entity}", s.ListAttributes)
		r.Route("/{entity}/{attribute}", func(r chi.Router) {
			r.Get("/", s.DescribeGate)
			r.Get("/states", s.ListStates)
			r.Get("/states/{state}/transitions", s.ListTransitions)
			r.Post("/authorize", s.Authorize)
		})
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "gates": s.Gates.Len()})
}

// ListGates handles GET /gates.
func (s *Server) ListGates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Gates.Keys())
}

// ListAttributes handles GET /gates/{entity}.
func (s *Server) ListAttributes(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	attributes := s.Gates.Attributes(entity)
	if len(attributes) == 0 {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%s: %w", entity, registry.ErrNotFound))
		return
	}
	s.writeJSON(w, http.StatusOK, attributes)
}

// DescribeGate handles GET /gates/{entity}/{attribute}.
func (s *Server) DescribeGate(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gate(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, g.Describe())
}

// ListStates handles GET /gates/{entity}/{attribute}/states.
func (s *Server) ListStates(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gate(w, r)
	if !ok {
		return
	}
	sorted := r.URL.Query().Get("sorted") == "true"
	s.writeJSON(w, http.StatusOK, g.StatesForSelect(sorted))
}

// ListTransitions handles GET /gates/{entity}/{attribute}/states/{state}/transitions.
func (s *Server) ListTransitions(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gate(w, r)
	if !ok {
		return
	}
	ts, err := g.TransitionsForState(chi.URLParam(r, "state"))
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ts)
}

// Authorize handles POST /gates/{entity}/{attribute}/authorize.
func (s *Server) Authorize(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gate(w, r)
	if !ok {
		return
	}

	var body AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("Authorize: Invalid request body", "error", err)
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var err error
	if s.Metrics != nil {
		err = s.Metrics.Authorize(g, body.From, body.To)
	} else {
		err = g.AssertValidTransition(body.From, body.To)
	}

	resp := AuthorizeResponse{From: body.From, To: body.To}
	if err != nil {
		resp.Error = err.Error()
		s.Logger.Debug("Authorize: rejected", "gate", g.String(), "from", body.From, "to", body.To, "error", err)
		s.writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	resp.Allowed = true
	resp.Forced = domain.IsForced(body.To)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) gate(w http.ResponseWriter, r *http.Request) (*engine.Graph, bool) {
	g, err := s.Gates.Get(chi.URLParam(r, "entity"), chi.URLParam(r, "attribute"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return g, true
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
