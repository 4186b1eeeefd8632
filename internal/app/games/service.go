package games

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/metrics"
)

// Repository defines the contract for persisting and retrieving games.
type Repository interface {
	List(ctx context.Context) ([]domaingames.Game, error)
	Get(ctx context.Context, id string) (domaingames.Game, error)
	Create(ctx context.Context, game domaingames.Game) (domaingames.Game, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Operation names recorded in logs and metrics.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpDelete = "delete"
	OpPing   = "ping"
)

// Service coordinates game operations using a Repository.
type Service struct {
	repo      Repository
	storeName string
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewService constructs a Service with the provided Repository.
// storeName labels logs and metrics; logger and recorder may be nil.
func NewService(repo Repository, storeName string, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		repo:      repo,
		storeName: storeName,
		logger:    logger,
		metrics:   recorder,
	}
}

// Games returns every persisted game.
func (s *Service) Games(ctx context.Context) ([]domaingames.Game, error) {
	start := time.Now()
	games, err := s.repo.List(ctx)
	s.observe(ctx, OpList, start, err)
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []domaingames.Game{}
	}
	return games, nil
}

// GameByID returns a single game.
func (s *Service) GameByID(ctx context.Context, id string) (domaingames.Game, error) {
	if err := domaingames.ValidateID(id); err != nil {
		return domaingames.Game{}, err
	}
	start := time.Now()
	game, err := s.repo.Get(ctx, id)
	s.observe(ctx, OpGet, start, err, slog.String(logging.FieldGameID, id))
	return game, err
}

// CreateGame persists a new game; any caller-supplied id is discarded.
func (s *Service) CreateGame(ctx context.Context, game domaingames.Game) (domaingames.Game, error) {
	game.ID = ""
	start := time.Now()
	created, err := s.repo.Create(ctx, game)
	s.observe(ctx, OpCreate, start, err)
	return created, err
}

// DeleteGame removes a game by id.
func (s *Service) DeleteGame(ctx context.Context, id string) error {
	if err := domaingames.ValidateID(id); err != nil {
		return err
	}
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.observe(ctx, OpDelete, start, err, slog.String(logging.FieldGameID, id))
	return err
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.repo.Ping(ctx)
	s.observe(ctx, OpPing, start, err)
	return err
}

// StoreName returns the label of the backing store.
func (s *Service) StoreName() string {
	return s.storeName
}

func (s *Service) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	duration := time.Since(start)
	// A missing game is an expected outcome, not a store failure.
	if errors.Is(err, domaingames.ErrNotFound) {
		err = nil
	}
	s.metrics.RecordStoreOperation(s.storeName, op, duration, err)
	if err == nil {
		return
	}
	logger := logging.FromContext(ctx, s.logger)
	args := append([]any{
		slog.String(logging.FieldStore, s.storeName),
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}, attrs...)
	logging.Warn(logger, "store operation failed", append(args, slog.Any("error", err))...)
}
