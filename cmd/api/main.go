package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lotogen/adapters/postgres"
	"lotogen/api"
	"lotogen/app"
	"lotogen/domain/scoring"
	"lotogen/internal"
	"lotogen/internal/config"
	"lotogen/internal/detector"
	"lotogen/internal/generator"
	"lotogen/internal/learning"
	"lotogen/ports"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := postgres.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure database schema:", err)
	}

	drawStore := postgres.NewDrawRepository(db)
	weightStore := postgres.NewWeightRepository(db)
	gameStore := postgres.NewGameRepository(db)
	ledger := postgres.NewAnomalyRepository(db)

	rng := &ports.SystemRNG{}
	scorer := scoring.NewScorer(scoring.DefaultConfig())
	gen := generator.NewGenerator(scorer, rng, logger, generator.PoolConfig{
		PoolMultiplier: cfg.Engine.PoolMultiplier,
		MaxAttempts:    cfg.Engine.MaxAttempts,
		QualityFloor:   cfg.Engine.QualityFloor,
		Workers:        cfg.Engine.ScoringWorkers,
	})
	classifier := detector.NewClassifier(ledger, logger, cfg.Engine.AnomalyThreshold)

	learn := learning.Config{
		LearningRate:   cfg.Learning.LearningRate,
		DiscountFactor: cfg.Learning.DiscountFactor,
		Epsilon:        cfg.Learning.Epsilon,
		EpsilonDecay:   cfg.Learning.EpsilonDecay,
		EpsilonFloor:   cfg.Learning.EpsilonFloor,
	}

	window := cfg.Engine.HistoryWindow
	generation := app.NewGenerationService(drawStore, weightStore, gameStore, gen, logger, window)
	reconcile := app.NewReconcileService(drawStore, weightStore, gameStore, rng, logger, learn, window)
	analysis := app.NewAnalysisService(drawStore, classifier, logger, window)
	importer := app.NewImportService(drawStore, logger)

	server := api.NewServer(api.Config{
		Port:    cfg.Server.Port,
		GinMode: cfg.Server.GinMode,
	})
	server.Initialize(generation, reconcile, analysis, importer, gameStore, drawStore, logger)

	ops := api.NewOpsServer(cfg.Server.OpsPort, db)

	if cfg.Profiling.Enabled {
		go func() {
			logger.Info("pprof listening on :%s", cfg.Profiling.Port)
			if err := http.ListenAndServe(":"+cfg.Profiling.Port, nil); err != nil {
				logger.Error("pprof listener failed: %v", err)
			}
		}()
	}

	go func() {
		if err := ops.Run(); err != nil {
			logger.Error("ops listener failed: %v", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("Server failed:", err)
		}
	case sig := <-stop:
		logger.Info("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown: %v", err)
	}
	if err := ops.Shutdown(ctx); err != nil {
		logger.Error("ops shutdown: %v", err)
	}
}
