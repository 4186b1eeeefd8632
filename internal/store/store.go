// Package store holds the game repositories and the lifecycle contract the
// server drives them through.
package store

import (
	"context"

	"github.com/preston-bernstein/games-api/internal/app/games"
)

// Store is a games.Repository with an explicit connection lifecycle.
type Store interface {
	games.Repository
	// Connect establishes the backing connection; called once at startup.
	Connect(ctx context.Context) error
	// Disconnect releases the connection; called once at shutdown.
	Disconnect(ctx context.Context) error
	// Clear removes every game. Used by integration tests between scenarios.
	Clear(ctx context.Context) error
	// Name labels the backend in logs and metrics.
	Name() string
}
