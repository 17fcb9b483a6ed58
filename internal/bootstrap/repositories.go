package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Codinho_Go/internal/config"
	"github.com/osse101/Codinho_Go/internal/database"
	"github.com/osse101/Codinho_Go/internal/database/memory"
	"github.com/osse101/Codinho_Go/internal/database/postgres"
	"github.com/osse101/Codinho_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// Pool is nil when running on in-memory storage.
type Repositories struct {
	KV         repository.KV
	Kata       repository.Kata
	Submission repository.Submission
	Pool       database.Pool
}

// InitializeRepositories creates the repositories for the configured storage backend
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgUsingMemoryStorage)
		katas := memory.NewKataRepository()
		return &Repositories{
			KV:         memory.NewKVRepository(),
			Kata:       katas,
			Submission: memory.NewSubmissionRepository(katas),
		}, nil
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MaxIdle:  cfg.DBMaxConnIdleTime,
		MaxLife:  cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	slog.Info(LogMsgUsingPostgresStorage, "host", cfg.DBHost, "db", cfg.DBName)

	return &Repositories{
		KV:         postgres.NewKVRepository(dbPool),
		Kata:       postgres.NewKataRepository(dbPool),
		Submission: postgres.NewSubmissionRepository(dbPool),
		Pool:       dbPool,
	}, nil
}
