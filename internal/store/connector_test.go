package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type flakeyStore struct {
	*MemoryStore
	failures int
	calls    int
	deadline bool
}

func (f *flakeyStore) Connect(ctx context.Context) error {
	f.calls++
	_, f.deadline = ctx.Deadline()
	if f.calls <= f.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestConnectorRetriesAndSucceeds(t *testing.T) {
	fs := &flakeyStore{MemoryStore: NewMemoryStore(), failures: 2}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c := NewConnector(logger, 3, time.Millisecond, 0)
	if err := c.Connect(context.Background(), fs); err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if fs.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fs.calls)
	}
	if strings.Count(buf.String(), "store connect retry") != 2 {
		t.Fatalf("expected two retry warnings, got %s", buf.String())
	}
}

func TestConnectorStopsAfterMaxAttempts(t *testing.T) {
	fs := &flakeyStore{MemoryStore: NewMemoryStore(), failures: 5}

	err := NewConnector(nil, 2, time.Millisecond, 0).Connect(context.Background(), fs)
	if err == nil || err.Error() != "connection refused" {
		t.Fatalf("expected last connect error, got %v", err)
	}
	if fs.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fs.calls)
	}
}

func TestConnectorRespectsContextCancel(t *testing.T) {
	fs := &flakeyStore{MemoryStore: NewMemoryStore(), failures: 5}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewConnector(nil, 3, time.Hour, 0).Connect(ctx, fs)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if fs.calls != 1 {
		t.Fatalf("expected a single attempt before cancel, got %d", fs.calls)
	}
}

func TestConnectorAppliesAttemptTimeout(t *testing.T) {
	fs := &flakeyStore{MemoryStore: NewMemoryStore()}

	if err := NewConnector(nil, 1, 0, time.Second).Connect(context.Background(), fs); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !fs.deadline {
		t.Fatalf("expected attempt context to carry a deadline")
	}
}

func TestConnectorUsesCustomBackoff(t *testing.T) {
	fs := &flakeyStore{MemoryStore: NewMemoryStore(), failures: 1}
	c := NewConnector(nil, 2, time.Hour, 0)

	calls := 0
	c.backoffFn = func(attempt int) time.Duration {
		calls++
		return 0
	}

	_ = c.Connect(context.Background(), fs)

	if calls == 0 {
		t.Fatalf("expected custom backoff to be invoked")
	}
}

func TestNewConnectorDefaults(t *testing.T) {
	c := NewConnector(nil, 0, 0, 0)
	if c.maxAttempts != defaultConnectAttempts {
		t.Fatalf("expected default attempts, got %d", c.maxAttempts)
	}
	if c.backoffFn(1) != defaultConnectBackoff {
		t.Fatalf("expected default backoff")
	}
}
