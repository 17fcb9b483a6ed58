package main

import (
	"context"
	"fmt"

	"github.com/osse101/Codinho_Go/internal/config"
	"github.com/osse101/Codinho_Go/internal/database/postgres"
	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/kata"
	"github.com/osse101/Codinho_Go/internal/validation"
)

type ImportKatasCommand struct{}

func (c *ImportKatasCommand) Name() string {
	return "import-katas"
}

func (c *ImportKatasCommand) Description() string {
	return "Upsert a kata catalog file into the database"
}

func (c *ImportKatasCommand) Run(args []string) error {
	path := config.ConfigPathKataCatalog
	if len(args) > 0 {
		path = args[0]
	}

	ctx := context.Background()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := kata.NewService(
		postgres.NewKataRepository(pool),
		postgres.NewSubmissionRepository(pool),
		event.NewMemoryBus(),
		validation.NewSchemaValidator(),
	)

	count, err := svc.ImportCatalog(ctx, path)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	PrintSuccess("Imported %d katas from %s", count, path)
	return nil
}
