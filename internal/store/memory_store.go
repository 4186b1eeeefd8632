package store

import (
	"context"
	"sync"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
)

// MemoryStore keeps games in memory in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	games map[string]domaingames.Game
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domaingames.Game),
	}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Connect(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Disconnect(ctx context.Context) error { return nil }

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

// List returns a copy of the current games.
func (s *MemoryStore) List(ctx context.Context) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.games[id])
	}
	return result, nil
}

// Get retrieves a game by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return domaingames.Game{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return domaingames.Game{}, domaingames.ErrNotFound
	}
	return g, nil
}

// Create validates and stores a game under a fresh id.
func (s *MemoryStore) Create(ctx context.Context, game domaingames.Game) (domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return domaingames.Game{}, err
	}
	if err := game.Validate(); err != nil {
		return domaingames.Game{}, err
	}
	game.ID = domaingames.NewID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	s.order = append(s.order, game.ID)
	return game, nil
}

// Delete removes a game by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return domaingames.ErrNotFound
	}
	delete(s.games, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear drops every game.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = make(map[string]domaingames.Game)
	s.order = nil
	return nil
}

// SetGames replaces the existing games with a new snapshot, keeping their ids.
func (s *MemoryStore) SetGames(games []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domaingames.Game, len(games))
	s.order = make([]string, 0, len(games))
	for _, g := range games {
		if _, dup := s.games[g.ID]; !dup {
			s.order = append(s.order, g.ID)
		}
		s.games[g.ID] = g
	}
}
