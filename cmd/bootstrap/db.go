package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resort-engine/internal/infra/db"
	"resort-engine/internal/infra/memory"
	"resort-engine/internal/infra/uow"
	"resort-engine/internal/pkg/config"
	"resort-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork selects the storage driver. The memory driver keeps all state
// in process and is meant for demos and tests.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, loc *time.Location, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage; state is lost on restart")
		return memory.NewUnitOfWork(logger), nil
	case config.StorageDriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.DB.AutoMigrate {
		if _, err := db.Migrate(ctx, cfg.DB, logger); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return uow.NewPostgresUoW(pool, loc, logger), nil
}
