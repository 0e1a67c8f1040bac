package main

import (
	"fmt"
	"os"

	"dictionnaire/internal/config"
	"dictionnaire/internal/domain"
	"dictionnaire/internal/handler"
	"dictionnaire/internal/repository"
	"dictionnaire/internal/repository/jsonfile"
	"dictionnaire/internal/repository/postgres"
	"dictionnaire/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting dictionary", zap.String("storage", cfg.Storage))

	// Initialize repository
	repo, closeRepo, err := newRepository(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeRepo()

	// Initialize services
	vocabService := service.NewVocabularyService(repo, logger)
	statsService := service.NewStatsService(logger)

	h := handler.NewHandler(
		os.Stdin,
		os.Stdout,
		vocabService,
		statsService,
		domain.NewLanguages(cfg.Languages...),
		logger,
	)

	if err := h.Run(); err != nil {
		logger.Error("Session ended with error", zap.Error(err))
	}

	logger.Info("Dictionary stopped")
}

// newLogger builds a production logger writing to stderr at level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// newRepository selects the storage backend
func newRepository(cfg *config.Config, logger *zap.Logger) (repository.VocabularyRepository, func(), error) {
	if cfg.Storage != config.StoragePostgres {
		logger.Info("Using vocabulary file", zap.String("path", cfg.VocabularyFile))
		return jsonfile.NewVocabularyRepo(cfg.VocabularyFile), func() {}, nil
	}

	db, err := postgres.Open(cfg.DSN(), logger)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Database connection established")

	if err := postgres.RunMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewVocabularyRepo(db), func() { db.Close() }, nil
}
