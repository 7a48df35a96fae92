package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

// OpsServer serves health and readiness probes on a side port, kept
// separate from the public API so load balancers can probe it without
// hitting application routes.
type OpsServer struct {
	router *chi.Mux
	db     *sqlx.DB
	server *http.Server
}

// NewOpsServer creates the operational endpoint listener.
func NewOpsServer(port string, db *sqlx.DB) *OpsServer {
	s := &OpsServer{
		router: chi.NewRouter(),
		db:     db,
	}

	s.router.Use(middleware.Recoverer)
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *OpsServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *OpsServer) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		http.Error(w, "database unavailable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}

// Run starts the ops listener and blocks until it stops.
func (s *OpsServer) Run() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the ops listener.
func (s *OpsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
