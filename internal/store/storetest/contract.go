// Package storetest runs the repository contract against any store.Store.
package storetest

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/store"
)

// Factory returns a connected, empty store. Cleanup is the factory's job.
type Factory func(t *testing.T) store.Store

// Run exercises every repository operation against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	cases := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"ListEmpty", testListEmpty},
		{"CreateAssignsID", testCreateAssignsID},
		{"CreateRejectsMissingFields", testCreateRejectsMissingFields},
		{"ListAfterSingleInsert", testListAfterSingleInsert},
		{"ListKeepsCreationOrder", testListKeepsCreationOrder},
		{"GetExistingAndMissing", testGetExistingAndMissing},
		{"DeleteRemovesGame", testDeleteRemovesGame},
		{"DeleteMissingReturnsNotFound", testDeleteMissingReturnsNotFound},
		{"ClearEmptiesStore", testClearEmptiesStore},
		{"Ping", testPing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newStore(t))
		})
	}
}

func zelda() domaingames.Game {
	return domaingames.Game{Title: "The Legend of Zelda", Genre: "Action-Adventure", ReleaseDate: "1986"}
}

func mustCreate(t *testing.T, s store.Store, g domaingames.Game) domaingames.Game {
	t.Helper()
	created, err := s.Create(context.Background(), g)
	if err != nil {
		t.Fatalf("create %q: %v", g.Title, err)
	}
	return created
}

func mustList(t *testing.T, s store.Store) []domaingames.Game {
	t.Helper()
	games, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return games
}

func testListEmpty(t *testing.T, s store.Store) {
	if got := mustList(t, s); len(got) != 0 {
		t.Fatalf("expected empty store, got %d games", len(got))
	}
}

func testCreateAssignsID(t *testing.T, s store.Store) {
	created := mustCreate(t, s, domaingames.Game{Title: "Duck Hunt", Genre: "Shooter", ReleaseDate: "1985"})
	if err := domaingames.ValidateID(created.ID); err != nil {
		t.Fatalf("expected object id, got %q: %v", created.ID, err)
	}
	if created.Title != "Duck Hunt" || created.Genre != "Shooter" || created.ReleaseDate != "1985" {
		t.Fatalf("unexpected created game %+v", created)
	}
}

func testCreateRejectsMissingFields(t *testing.T, s store.Store) {
	_, err := s.Create(context.Background(), domaingames.Game{ReleaseDate: "1985"})
	if !errors.Is(err, domaingames.ErrInvalidGame) {
		t.Fatalf("expected ErrInvalidGame, got %v", err)
	}
	if got := mustList(t, s); len(got) != 0 {
		t.Fatalf("expected nothing persisted, got %+v", got)
	}
}

func testListAfterSingleInsert(t *testing.T, s store.Store) {
	created := mustCreate(t, s, zelda())

	got := mustList(t, s)
	if len(got) != 1 {
		t.Fatalf("expected 1 game, got %d", len(got))
	}
	if got[0] != created {
		t.Fatalf("expected %+v, got %+v", created, got[0])
	}
}

func testListKeepsCreationOrder(t *testing.T, s store.Store) {
	titles := []string{"Metroid", "Kid Icarus", "Excitebike"}
	for _, title := range titles {
		mustCreate(t, s, domaingames.Game{Title: title, Genre: "NES"})
	}

	got := mustList(t, s)
	if len(got) != len(titles) {
		t.Fatalf("expected %d games, got %d", len(titles), len(got))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Fatalf("expected %s at position %d, got %s", title, i, got[i].Title)
		}
	}
}

func testGetExistingAndMissing(t *testing.T, s store.Store) {
	created := mustCreate(t, s, zelda())

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}

	if _, err := s.Get(context.Background(), domaingames.NewID()); !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testDeleteRemovesGame(t *testing.T, s store.Store) {
	keep := mustCreate(t, s, zelda())
	gone := mustCreate(t, s, domaingames.Game{Title: "Fortnite", Genre: "BR"})

	if err := s.Delete(context.Background(), gone.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got := mustList(t, s)
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %+v", keep.ID, got)
	}
	if err := s.Delete(context.Background(), gone.ID); !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected second delete to return ErrNotFound, got %v", err)
	}
}

func testDeleteMissingReturnsNotFound(t *testing.T, s store.Store) {
	if err := s.Delete(context.Background(), domaingames.NewID()); !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testClearEmptiesStore(t *testing.T, s store.Store) {
	mustCreate(t, s, zelda())
	mustCreate(t, s, domaingames.Game{Title: "Fortnite", Genre: "BR"})

	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := mustList(t, s); len(got) != 0 {
		t.Fatalf("expected empty store after clear, got %d", len(got))
	}
}

func testPing(t *testing.T, s store.Store) {
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
