package store_test

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/store"
	"github.com/preston-bernstein/games-api/internal/store/storetest"
)

func TestMemoryStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})
}

func TestMemoryStoreSetGamesReplacesSnapshot(t *testing.T) {
	s := store.NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "old", Title: "Old", Genre: "x"}})

	s.SetGames([]domaingames.Game{
		{ID: "b", Title: "B", Genre: "x"},
		{ID: "a", Title: "A", Genre: "x"},
	})

	if _, err := s.Get(context.Background(), "old"); !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected old game to be removed after replace, got %v", err)
	}
	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected snapshot order preserved, got %+v", got)
	}
}

func TestMemoryStoreHonorsCancelledContext(t *testing.T) {
	s := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from list, got %v", err)
	}
	if _, err := s.Create(ctx, domaingames.Game{Title: "x", Genre: "y"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from create, got %v", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from ping, got %v", err)
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := store.NewMemoryStore()
	created, err := s.Create(context.Background(), domaingames.Game{Title: "Tetris", Genre: "Puzzle"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := s.List(context.Background())
	got[0].Title = "mutated"

	again, _ := s.Get(context.Background(), created.ID)
	if again.Title != "Tetris" {
		t.Fatalf("expected stored game to be unaffected, got %s", again.Title)
	}
}
