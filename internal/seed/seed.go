// Package seed bootstraps an empty store from a JSON file of games.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/logging"
)

// Target is the subset of the games service the seeder needs.
type Target interface {
	Games(ctx context.Context) ([]domaingames.Game, error)
	CreateGame(ctx context.Context, game domaingames.Game) (domaingames.Game, error)
}

// LoadFile reads a JSON array of games.
func LoadFile(path string) ([]domaingames.Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var games []domaingames.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return games, nil
}

// Apply creates games only when the target is empty and returns how many were created.
// It stops at the first invalid entry.
func Apply(ctx context.Context, target Target, games []domaingames.Game, logger *slog.Logger) (int, error) {
	existing, err := target.Games(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing games: %w", err)
	}
	if len(existing) > 0 {
		logging.Info(logger, "seed skipped, store not empty", slog.Int(logging.FieldCount, len(existing)))
		return 0, nil
	}

	created := 0
	for i, g := range games {
		if _, err := target.CreateGame(ctx, g); err != nil {
			return created, fmt.Errorf("seed game %d (%q): %w", i, g.Title, err)
		}
		created++
	}
	logging.Info(logger, "seeded games", slog.Int(logging.FieldCount, created))
	return created, nil
}

// FromFile loads path and applies it; an empty path is a no-op.
func FromFile(ctx context.Context, target Target, path string, logger *slog.Logger) (int, error) {
	if path == "" {
		return 0, nil
	}
	games, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	return Apply(ctx, target, games, logger)
}
