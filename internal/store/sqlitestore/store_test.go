package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/store"
	"github.com/preston-bernstein/games-api/internal/store/storetest"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s := New(path)
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = s.Disconnect(context.Background()) })
	return s
}

func TestSQLiteStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return openTestStore(t, filepath.Join(t.TempDir(), "games.db"))
	})
}

func TestSQLiteStorePersistsAcrossReconnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	ctx := context.Background()

	first := New(path)
	if err := first.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	created, err := first.Create(ctx, domaingames.Game{Title: "Duck Hunt", Genre: "Shooter", ReleaseDate: "1985"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}

	second := openTestStore(t, path)
	got, err := second.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after reconnect: %v", err)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	if err := New("  ").Connect(context.Background()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSQLiteStoreOperationsBeforeConnectFail(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "games.db"))
	ctx := context.Background()

	if _, err := s.List(ctx); !errors.Is(err, errNotConnected) {
		t.Fatalf("expected errNotConnected, got %v", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, errNotConnected) {
		t.Fatalf("expected errNotConnected, got %v", err)
	}
	if err := s.Disconnect(ctx); err != nil {
		t.Fatalf("expected disconnect without connect to be a no-op, got %v", err)
	}
}

func TestSQLiteStoreRejectsMalformedIDs(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "games.db"))
	ctx := context.Background()

	if _, err := s.Get(ctx, "bad"); !errors.Is(err, domaingames.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID from get, got %v", err)
	}
	if err := s.Delete(ctx, "bad"); !errors.Is(err, domaingames.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID from delete, got %v", err)
	}
}
