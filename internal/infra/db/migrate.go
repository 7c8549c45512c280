package db

import (
	"context"
	"fmt"
	"log/slog"

	"resort-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending versioned migrations through the atlas binary found
// in PATH. It reports the number of files applied.
func Migrate(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (int, error) {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return 0, fmt.Errorf("atlas: client init failed: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: cfg.MigrationsDir,
	})
	if err != nil {
		return 0, fmt.Errorf("atlas: migrate apply failed: %w", err)
	}

	logger.Info("migrations applied",
		"count", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return len(res.Applied), nil
}
