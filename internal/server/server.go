package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/rpgo/projection-calculator/internal/calculation"
	"github.com/rpgo/projection-calculator/internal/domain"
)

// Server exposes the calculation engine over a small JSON API. The engine is
// pure, so handlers share it without locking.
type Server struct {
	engine *calculation.CalculationEngine
	logger *zap.Logger
	router chi.Router
}

// New creates a server around an engine. A nil logger disables request logging.
func New(engine *calculation.CalculationEngine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine: engine,
		logger: logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/project", s.handleProject)
		r.Post("/plan", s.handlePlan)
		r.Post("/sensitivity", s.handleSensitivity)
	})
	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	s.logger.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	var params domain.SimulationParameters
	if !s.decode(w, r, &params) {
		return
	}
	s.respond(w, http.StatusOK, s.engine.Project(params))
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var params domain.SimulationParameters
	if !s.decode(w, r, &params) {
		return
	}
	s.respond(w, http.StatusOK, s.engine.Plan(params))
}

// sensitivityRequest is the /sensitivity body: the parameters plus an
// optional grid; an absent grid uses the default perturbations.
type sensitivityRequest struct {
	Parameters domain.SimulationParameters `json:"parameters"`
	Grid       domain.SensitivityRequest   `json:"grid"`
}

func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req sensitivityRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respond(w, http.StatusOK, s.engine.SensitivityGrid(req.Parameters, req.Grid))
}

// decode reads a JSON body; on failure it writes a 400 error body and
// reports false. The engine itself never errors: a decoded parameter set is
// always simulatable.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("bad request body", zap.Error(err))
		s.respond(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", zap.Error(err))
	}
}
