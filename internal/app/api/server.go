// Package api exposes the simulation engine and the venue snapshots over
// HTTP: simulate an order, inspect a book, inspect feed health.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"

	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/app/instrumentation"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
	snapshotv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/snapshot/v1"
)

// Server wires the HTTP surface of the service.
type Server struct {
	store   snapshotv1.Store
	engine  simulationv1.Simulator
	metrics *instrumentation.Metrics
	logger  logger.Interface

	router chi.Router
}

// NewServer builds the router with all routes and middleware attached.
// Metrics may be nil for tests.
func NewServer(store snapshotv1.Store, engine simulationv1.Simulator, metrics *instrumentation.Metrics, log logger.Interface) *Server {
	s := &Server{
		store:   store,
		engine:  engine,
		metrics: metrics,
		logger:  log,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger(log))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/simulate", s.handleSimulate)
		r.Get("/orderbook/{venue}", s.handleOrderbook)
		r.Get("/status", s.handleStatus)
	})

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"state": "running"})
}
