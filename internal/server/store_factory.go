package server

import (
	"log/slog"

	"github.com/preston-bernstein/games-api/internal/config"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/store"
	"github.com/preston-bernstein/games-api/internal/store/mongostore"
	"github.com/preston-bernstein/games-api/internal/store/sqlitestore"
)

// storeFactory selects the repository backend named by config.
type storeFactory struct {
	logger *slog.Logger
}

func newStoreFactory(logger *slog.Logger) storeFactory {
	return storeFactory{logger: logger}
}

func (f storeFactory) build(cfg config.Config) store.Store {
	switch cfg.Store {
	case config.StoreMongo:
		return mongostore.New(mongostore.Options{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			Collection:     cfg.Mongo.Collection,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
	case config.StoreSQLite:
		return sqlitestore.New(cfg.SQLite.Path)
	case config.StoreMemory, "":
		return store.NewMemoryStore()
	default:
		logging.Warn(f.logger, "unknown store, falling back to memory", slog.String(logging.FieldStore, cfg.Store))
		return store.NewMemoryStore()
	}
}
