package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/supplyline/supplyline/internal/platform/db"
	platformmongo "github.com/supplyline/supplyline/internal/platform/mongo"
	"github.com/supplyline/supplyline/internal/store"
	"github.com/supplyline/supplyline/internal/store/memstore"
	"github.com/supplyline/supplyline/internal/store/mongostore"
	"github.com/supplyline/supplyline/internal/store/pgstore"
)

// OpenStore connects the document store selected by STORE_DRIVER. The caller
// owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case StoreMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		return memstore.New(), nil
	case StorePostgres:
		pool, err := db.New(ctx, cfg.PGDSN, db.PoolOptions{MaxConns: cfg.PGMaxConns})
		if err != nil {
			return nil, err
		}
		s := pgstore.New(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		logger.Info("connected document store", slog.String("driver", StorePostgres))
		return s, nil
	default:
		client, err := platformmongo.New(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		logger.Info("connected document store", slog.String("driver", StoreMongo), slog.String("database", cfg.MongoDatabase))
		return mongostore.New(client, cfg.MongoDatabase), nil
	}
}
