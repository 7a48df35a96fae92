package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lotogen/adapters/excel"
	"lotogen/adapters/postgres"
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
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "lotogen",
		Short: "Lotogen CLI for candidate generation, conferral and anomaly analysis",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newConferCmd(),
		newClassifyCmd(),
		newValidateCmd(),
		newImportCmd(),
		newContextCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var count int
	var strategy string
	var mode string
	var persist bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a ranked pool of candidate games",
		Long: `Generate candidate games for the next contest using the configured
strategy and the current adaptive weights.

Example: lotogen generate --count 10 --strategy tiered --mode normal --persist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), count, strategy, mode, persist, seed)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of games to generate")
	cmd.Flags().StringVar(&strategy, "strategy", "tiered", "Strategy: uniform|tiered|evolutionary")
	cmd.Flags().StringVar(&mode, "mode", "normal", "Mode: normal|anti_jump|aggressive")
	cmd.Flags().BoolVar(&persist, "persist", false, "Persist generated games for later conferral")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for deterministic generation (0 = time-based)")

	return cmd
}

func newConferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confer [contest]",
		Short: "Settle pending games against an official result",
		Long: `Settle every pending game targeting the given contest, compute hits
and prizes, and feed the outcome back into weight adaptation.

Example: lotogen confer 3012`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contest, err := strconv.Atoi(args[0])
			if err != nil || contest <= 0 {
				return fmt.Errorf("invalid contest number %q", args[0])
			}
			return runConfer(cmd.Context(), contest)
		},
	}
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var contest int

	cmd := &cobra.Command{
		Use:   "classify [numerals...]",
		Short: "Classify a combination against the anomaly rules",
		Long: `Check whether a 15-numeral combination deviates enough from the
historical baseline to be classified as an anomalous pattern.

Example: lotogen classify 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15`,
		Args: cobra.ExactArgs(15),
		RunE: func(cmd *cobra.Command, args []string) error {
			numerals := make([]int, len(args))
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid numeral %q", a)
				}
				numerals[i] = v
			}
			return runClassify(cmd.Context(), numerals, contest)
		},
	}

	cmd.Flags().IntVar(&contest, "contest", 0, "Contest the combination targets (0 = next)")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "validate [numerals...]",
		Short: "Validate a combination against a mode's constraint profile",
		Long: `Check a 15-numeral combination against the structural constraint
ranges of a generation mode (sum, parity, primes, frame balance, runs).

Example: lotogen validate --mode anti_jump 1 2 3 5 8 10 12 14 17 19 20 21 23 24 25`,
		Args: cobra.ExactArgs(15),
		RunE: func(cmd *cobra.Command, args []string) error {
			numerals := make([]int, len(args))
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid numeral %q", a)
				}
				numerals[i] = v
			}
			outcome, err := app.ValidateCombination(numerals, app.GenerationMode(mode))
			if err != nil {
				return err
			}
			if outcome.Valid {
				fmt.Printf("Valid under mode %s\n", outcome.Mode)
				return nil
			}
			fmt.Printf("Invalid under mode %s:\n", outcome.Mode)
			for _, v := range outcome.Violations {
				fmt.Printf("  - %s\n", v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "normal", "Mode: normal|anti_jump|aggressive")

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-history [file]",
		Short: "Import draw history from a spreadsheet",
		Long: `Import official draw results from an Excel file. Contests already
present are skipped.

Example: lotogen import-history resultados.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0])
		},
	}
	return cmd
}

func newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show the current engine context snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContext(cmd.Context())
		},
	}
	return cmd
}

// deps bundles the wired services shared by the commands.
type deps struct {
	generation *app.GenerationService
	reconcile  *app.ReconcileService
	analysis   *app.AnalysisService
	importer   *app.ImportService
	close      func()
}

func buildDeps(seed int64) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := internal.NewDefaultLogger()

	db, err := postgres.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := postgres.EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
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
		Seed:           seed,
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
	return &deps{
		generation: app.NewGenerationService(drawStore, weightStore, gameStore, gen, logger, window),
		reconcile:  app.NewReconcileService(drawStore, weightStore, gameStore, rng, logger, learn, window),
		analysis:   app.NewAnalysisService(drawStore, classifier, logger, window),
		importer:   app.NewImportService(drawStore, logger),
		close:      func() { db.Close() },
	}, nil
}

func runGenerate(ctx context.Context, count int, strategy, mode string, persist bool, seed int64) error {
	d, err := buildDeps(seed)
	if err != nil {
		return err
	}
	defer d.close()

	result, err := d.generation.Generate(ctx, app.GenerateRequest{
		Count:    count,
		Strategy: generator.StrategyName(strategy),
		Mode:     app.GenerationMode(mode),
		Persist:  persist,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Session %s, target contest %d, strategy %s, mode %s\n",
		result.SessionID, result.TargetContest, result.Strategy, result.Mode)
	for i, cand := range result.Candidates {
		fmt.Printf("%2d. %s  fitness=%.4f sum=%d\n",
			i+1, cand.Combination, cand.Fitness, cand.Combination.Sum())
	}
	return nil
}

func runConfer(ctx context.Context, contest int) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}
	defer d.close()

	result, err := d.reconcile.Reconcile(ctx, contest)
	if err != nil {
		return err
	}

	fmt.Printf("Contest %d: settled %d games\n", result.Contest, result.Settled)
	for hits, n := range result.Hits {
		fmt.Printf("  %2d hits: %d games\n", hits, n)
	}
	fmt.Printf("Prize R$ %.2f, stake R$ %.2f, net R$ %.2f\n",
		result.TotalPrize, result.TotalStake, result.TotalPrize-result.TotalStake)
	fmt.Printf("Reward %.1f, epsilon %.4f, anti-jump %v\n",
		result.Reward, result.Epsilon, result.AntiJumpUsed)
	return nil
}

func runClassify(ctx context.Context, numerals []int, contest int) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}
	defer d.close()

	result, err := d.analysis.Classify(ctx, numerals, contest)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runImport(ctx context.Context, path string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}
	defer d.close()

	result, err := d.importer.Import(ctx, excel.NewHistoryReader(path))
	if err != nil {
		return err
	}

	fmt.Printf("Parsed %d draws, saved %d, skipped %d already present\n",
		result.Parsed, result.Saved, result.Skipped)
	return nil
}

func runContext(ctx context.Context) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}
	defer d.close()

	snapshot, err := d.analysis.Snapshot(ctx)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
