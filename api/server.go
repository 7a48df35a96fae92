package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lotogen/app"
	"lotogen/internal"
	"lotogen/ports"
)

// Server exposes the engine over HTTP: generation rounds, result
// conferral, anomaly classification and history import.
type Server struct {
	router     *gin.Engine
	generation *app.GenerationService
	reconcile  *app.ReconcileService
	analysis   *app.AnalysisService
	importer   *app.ImportService
	games      ports.GameStore
	draws      ports.DrawStore
	logger     *internal.Logger

	httpServer *http.Server
}

// Config holds server settings.
type Config struct {
	Port    string
	GinMode string
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s := &Server{
		router: gin.Default(),
	}
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Initialize sets up the server with dependencies and routes.
func (s *Server) Initialize(
	generation *app.GenerationService,
	reconcile *app.ReconcileService,
	analysis *app.AnalysisService,
	importer *app.ImportService,
	games ports.GameStore,
	draws ports.DrawStore,
	logger *internal.Logger,
) {
	s.generation = generation
	s.reconcile = reconcile
	s.analysis = analysis
	s.importer = importer
	s.games = games
	s.draws = draws
	s.logger = logger

	s.setupRoutes()
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/confer/:contest", s.handleConfer)
		v1.POST("/classify", s.handleClassify)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/import", s.handleImport)

		v1.GET("/context", s.handleContext)
		v1.GET("/baseline", s.handleBaseline)
		v1.GET("/draws", s.handleListDraws)
		v1.GET("/draws/latest", s.handleLatestDraw)
		v1.GET("/sessions/:id/games", s.handleSessionGames)
		v1.GET("/games/:id", s.handleGetGame)
	}
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("API server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
