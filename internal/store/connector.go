package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/games-api/internal/logging"
)

const (
	defaultConnectAttempts = 3
	defaultConnectBackoff  = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// Connector retries Store.Connect with linear backoff so the service can start
// before its database is reachable.
type Connector struct {
	logger         *slog.Logger
	maxAttempts    int
	attemptTimeout time.Duration
	backoffFn      backoffFunc
}

// NewConnector builds a Connector. If maxAttempts/backoff are <= 0, defaults are used.
// A zero attemptTimeout leaves each attempt bounded only by the caller's context.
func NewConnector(logger *slog.Logger, maxAttempts int, backoff, attemptTimeout time.Duration) *Connector {
	if maxAttempts <= 0 {
		maxAttempts = defaultConnectAttempts
	}
	if backoff <= 0 {
		backoff = defaultConnectBackoff
	}
	return &Connector{
		logger:         logger,
		maxAttempts:    maxAttempts,
		attemptTimeout: attemptTimeout,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

// Connect calls st.Connect until it succeeds, attempts run out, or ctx ends.
func (c *Connector) Connect(ctx context.Context, st Store) error {
	var lastErr error
	name := slog.String(logging.FieldStore, st.Name())

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		lastErr = c.connectOnce(ctx, st)
		if lastErr == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		logging.Warn(c.logger, "store connect retry", name, "attempt", attempt, "max_attempts", c.maxAttempts, "err", lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoffFn(attempt)):
		}
	}

	return lastErr
}

func (c *Connector) connectOnce(ctx context.Context, st Store) error {
	if c.attemptTimeout <= 0 {
		return st.Connect(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()
	return st.Connect(attemptCtx)
}
