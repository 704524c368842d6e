package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/config"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting seed",
		"env", cfg.Primary.Env,
		"migrations_dir", cfg.Migrations.Dir,
		"seed_enabled", cfg.Seed.Enabled,
	)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("seed failed",
			"error", err,
			"code", application.ToErrorCode(err),
			"category", application.CategorizeError(err),
		)
		os.Exit(1)
	}

	logger.Info("seed finished")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := db.ApplyMigrations(cfg.Migrations.Dir)
	if err != nil {
		return err
	}
	logger.Info("migrations up to date", "version", version)

	if !cfg.Seed.Enabled {
		return nil
	}

	s := newSeeder(db, logger)
	if err := s.seed(ctx); err != nil {
		if errors.Is(err, errAlreadySeeded) {
			logger.Info("sample data already present, skipping inserts")
		} else {
			return err
		}
	}

	return s.report(ctx)
}
