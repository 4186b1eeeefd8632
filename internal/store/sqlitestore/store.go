// Package sqlitestore keeps game documents as JSON rows in an embedded SQLite file.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/store"
)

const schema = `CREATE TABLE IF NOT EXISTS games (
	seq      INTEGER PRIMARY KEY AUTOINCREMENT,
	id       TEXT    NOT NULL UNIQUE,
	document TEXT    NOT NULL
)`

var errNotConnected = errors.New("sqlite store is not connected")

// Store persists games in SQLite, one JSON document per row.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// document is the stored JSON shape; the id lives in its own column.
type document struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// New builds an unopened Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Name() string { return "sqlite" }

// Connect opens the database file and applies the schema.
func (s *Store) Connect(ctx context.Context) error {
	if strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(s.path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time keeps SQLITE_BUSY out of request paths.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	s.mu.Lock()
	s.db = db
	s.mu.Unlock()
	return nil
}

// Disconnect closes the SQLite handle.
func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	db := s.db
	s.db = nil
	s.mu.Unlock()

	if db == nil {
		return nil
	}
	return db.Close()
}

func (s *Store) handle() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errNotConnected
	}
	return s.db, nil
}

func (s *Store) Ping(ctx context.Context) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// List returns every game in insertion order.
func (s *Store) List(ctx context.Context) ([]domaingames.Game, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, document FROM games ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	games := make([]domaingames.Game, 0)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		game, err := decode(id, raw)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return games, nil
}

func (s *Store) Get(ctx context.Context, id string) (domaingames.Game, error) {
	if err := domaingames.ValidateID(id); err != nil {
		return domaingames.Game{}, err
	}
	db, err := s.handle()
	if err != nil {
		return domaingames.Game{}, err
	}

	var raw string
	err = db.QueryRowContext(ctx, `SELECT document FROM games WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domaingames.Game{}, domaingames.ErrNotFound
	}
	if err != nil {
		return domaingames.Game{}, fmt.Errorf("get game %s: %w", id, err)
	}
	return decode(id, raw)
}

// Create validates the game and inserts it under a fresh id.
func (s *Store) Create(ctx context.Context, game domaingames.Game) (domaingames.Game, error) {
	if err := game.Validate(); err != nil {
		return domaingames.Game{}, err
	}
	db, err := s.handle()
	if err != nil {
		return domaingames.Game{}, err
	}

	raw, err := json.Marshal(document{
		Title:       game.Title,
		Genre:       game.Genre,
		ReleaseDate: game.ReleaseDate,
	})
	if err != nil {
		return domaingames.Game{}, fmt.Errorf("encode game: %w", err)
	}
	game.ID = domaingames.NewID()
	if _, err := db.ExecContext(ctx, `INSERT INTO games (id, document) VALUES (?, ?)`, game.ID, string(raw)); err != nil {
		return domaingames.Game{}, fmt.Errorf("insert game: %w", err)
	}
	return game, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := domaingames.ValidateID(id); err != nil {
		return err
	}
	db, err := s.handle()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	if n == 0 {
		return domaingames.ErrNotFound
	}
	return nil
}

// Clear removes every row.
func (s *Store) Clear(ctx context.Context) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	return nil
}

func decode(id, raw string) (domaingames.Game, error) {
	var doc document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domaingames.Game{}, fmt.Errorf("decode game %s: %w", id, err)
	}
	return domaingames.Game{
		ID:          id,
		Title:       doc.Title,
		Genre:       doc.Genre,
		ReleaseDate: doc.ReleaseDate,
	}, nil
}
