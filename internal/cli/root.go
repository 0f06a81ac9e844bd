package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfreitas/flashdeck/internal/config"
	"github.com/mfreitas/flashdeck/internal/db"
	"github.com/mfreitas/flashdeck/internal/jobs"
	"github.com/mfreitas/flashdeck/internal/logger"
	"github.com/mfreitas/flashdeck/internal/repository"
	"github.com/mfreitas/flashdeck/internal/repository/sqlite"
	"github.com/mfreitas/flashdeck/internal/services"
	"github.com/mfreitas/flashdeck/internal/worker"
)

// app holds the wired-up application shared by all subcommands.
type app struct {
	cfg      config.Config
	database *db.DB
	reviews  repository.ReviewRepository
	pool     *worker.Pool
	queue    jobs.JobQueue
	decks    services.DeckService
	cards    services.CardService
	study    services.StudyService
	stats    services.StatsService
	cancel   context.CancelFunc
}

var a *app

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "A spaced repetition flashcard trainer",
	Long: `Flashdeck schedules flashcard reviews with the SM-2 spaced repetition
algorithm. Cards you struggle with come back sooner; cards you know
well drift further into the future.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func setup() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	deckRepo := sqlite.NewDeckRepository(database.DB)
	cardRepo := sqlite.NewCardRepository(database.DB)
	reviewRepo := sqlite.NewReviewRepository(database.DB)

	pool := worker.NewPool(cfg.HistoryWorkerCount, cfg.HistoryQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	queue := jobs.NewWorkerQueue(pool, reviewRepo)
	policy := services.PolicyFromConfig(cfg)

	a = &app{
		cfg:      cfg,
		database: database,
		reviews:  reviewRepo,
		pool:     pool,
		queue:    queue,
		decks:    services.NewDeckService(deckRepo, cardRepo, policy),
		cards:    services.NewCardService(cardRepo, deckRepo, policy),
		study:    services.NewStudyService(cardRepo, deckRepo, queue, policy),
		stats:    services.NewStatsService(deckRepo, cardRepo, reviewRepo, policy),
		cancel:   cancel,
	}
	return nil
}

func teardown() {
	if a == nil {
		return
	}
	// Drain pending history writes before closing the database.
	a.pool.Stop()
	a.cancel()
	a.database.Close()
	a = nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
