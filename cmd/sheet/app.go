package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/config"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	sheetorchestrator "github.com/KirkDiggler/vop-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/vop-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/vop-sheet/internal/repositories/character"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

// app is the loaded sheet: catalog, repository and orchestrator
type app struct {
	catalog *catalog.Catalog
	sheet   *sheetorchestrator.Orchestrator
	closers []func() error
}

// openApp wires the configured backend and loads the saved character
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	var src catalog.Source = catalog.EmbeddedSource{}
	if cfg.CatalogDir != "" {
		src = catalog.DirSource{Dir: cfg.CatalogDir}
	}
	a.catalog = catalog.Load(ctx, src)

	repo, err := a.openRepository(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	a.sheet, err = sheetorchestrator.New(&sheetorchestrator.Config{
		Repository: repo,
		Catalog:    a.catalog,
		Slot:       cfg.Slot,
		Autosave:   cfg.Autosave,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	out, err := a.sheet.Load(ctx, &sheet.LoadInput{})
	if err != nil {
		a.close()
		return nil, err
	}
	slog.DebugContext(ctx, "sheet loaded",
		"storage", cfg.Storage.String(),
		"slot", cfg.Slot,
		"found", out.Found)

	return a, nil
}

func (a *app) openRepository(ctx context.Context, cfg *config.Config) (characterrepo.Repository, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		repo, err := characterrepo.NewSQLite(ctx, &characterrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil

	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable").
				WithMeta("addr", cfg.RedisAddr)
		}
		return characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})

	case config.StorageMemory:
		return characterrepo.NewMemory(nil), nil

	default:
		return nil, errors.InvalidArgumentf("unknown storage %q", cfg.Storage)
	}
}

// close waits for pending saves, then releases the backend
func (a *app) close() {
	if a.sheet != nil {
		a.sheet.Wait()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close backend", "error", err.Error())
		}
	}
}
