package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Codinho_Go/internal/bootcamp"
	"github.com/osse101/Codinho_Go/internal/config"
	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/gamification"
	"github.com/osse101/Codinho_Go/internal/kata"
	"github.com/osse101/Codinho_Go/internal/repository"
	"github.com/osse101/Codinho_Go/internal/server"
	"github.com/osse101/Codinho_Go/internal/validation"
)

// InitializeServices builds the domain services on top of repos.
// Per-user stores are views of the shared KV scoped with repository.ForUser.
func InitializeServices(cfg *config.Config, repos *Repositories, eventBus event.Bus) server.Services {
	gamificationStores := func(userID string) gamification.Store {
		return repository.ForUser(repos.KV, userID)
	}
	bootcampStores := func(userID string) bootcamp.Store {
		return repository.ForUser(repos.KV, userID)
	}

	return server.Services{
		Gamification: gamification.NewService(gamificationStores, eventBus, cfg.LedgerCacheSize, cfg.LedgerCacheTTL),
		Bootcamp:     bootcamp.NewService(bootcampStores, eventBus, cfg.LedgerCacheSize, cfg.LedgerCacheTTL),
		Kata:         kata.NewService(repos.Kata, repos.Submission, eventBus, validation.NewSchemaValidator()),
	}
}

// SyncKataCatalog imports the bundled starter catalog. Kata IDs are fixed in the
// file so running it on every start is idempotent.
func SyncKataCatalog(ctx context.Context, kataService kata.Service) error {
	slog.Info(LogMsgSyncingKataCatalog, "path", config.ConfigPathKataCatalog)

	count, err := kataService.ImportCatalog(ctx, config.ConfigPathKataCatalog)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncKatas, err)
	}

	slog.Info(LogMsgKataCatalogSynced, "count", count)
	return nil
}
