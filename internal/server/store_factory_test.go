package server

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/games-api/internal/config"
	"github.com/preston-bernstein/games-api/internal/store"
	"github.com/preston-bernstein/games-api/internal/store/mongostore"
	"github.com/preston-bernstein/games-api/internal/store/sqlitestore"
	"github.com/preston-bernstein/games-api/internal/testutil"
)

func TestStoreFactorySelectsBackend(t *testing.T) {
	factory := newStoreFactory(nil)

	if _, ok := factory.build(config.Config{Store: config.StoreMongo}).(*mongostore.Store); !ok {
		t.Fatalf("expected mongo store")
	}
	sqlitePath := filepath.Join(t.TempDir(), "games.db")
	if _, ok := factory.build(config.Config{Store: config.StoreSQLite, SQLite: config.SQLiteConfig{Path: sqlitePath}}).(*sqlitestore.Store); !ok {
		t.Fatalf("expected sqlite store")
	}
	if _, ok := factory.build(config.Config{Store: config.StoreMemory}).(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store")
	}
}

func TestStoreFactoryFallsBackToMemory(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	st := newStoreFactory(logger).build(config.Config{Store: "cassandra"})
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", st)
	}
	if !strings.Contains(buf.String(), "unknown store") || !strings.Contains(buf.String(), "cassandra") {
		t.Fatalf("expected fallback warning, got %s", buf.String())
	}
}
