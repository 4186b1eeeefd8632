package testutil

import (
	"context"

	"github.com/preston-bernstein/games-api/internal/store"
)

// StubStore wraps a MemoryStore with injectable lifecycle and ping failures.
type StubStore struct {
	*store.MemoryStore
	ConnectErr    error
	DisconnectErr error
	PingErr       error

	ConnectCalls    int
	DisconnectCalls int
}

var _ store.Store = (*StubStore)(nil)

// NewStubStore returns a StubStore over an empty MemoryStore.
func NewStubStore() *StubStore {
	return &StubStore{MemoryStore: store.NewMemoryStore()}
}

func (s *StubStore) Name() string { return "stub" }

func (s *StubStore) Connect(ctx context.Context) error {
	_ = ctx
	s.ConnectCalls++
	return s.ConnectErr
}

func (s *StubStore) Disconnect(ctx context.Context) error {
	_ = ctx
	s.DisconnectCalls++
	return s.DisconnectErr
}

func (s *StubStore) Ping(ctx context.Context) error {
	if s.PingErr != nil {
		return s.PingErr
	}
	return s.MemoryStore.Ping(ctx)
}
