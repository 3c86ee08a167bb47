package business

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

type directory interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	ListByIDs(ctx context.Context, ids []string) (map[string]domain.Business, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingDirectory behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingDirectory decorates the business directory with bounded retries.
// Directory reads feed discovery and claim enrichment; a transient hiccup
// should not surface as an empty listing.
type RetryingDirectory struct {
	next    directory
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingDirectory wraps next with retry behavior. Returns nil when next
// is nil.
func NewRetryingDirectory(next directory, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingDirectory {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 50 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = time.Second
	}
	return &RetryingDirectory{next: next, logger: logger, retries: retries, cfg: cfg}
}

// GetByID reads one business with retries on transient failures.
func (g *RetryingDirectory) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var (
		b   *domain.Business
		err error
	)
	err = g.retry(ctx, "GetByID", func() error {
		b, err = g.next.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByIDs reads a batch of businesses with retries on transient failures.
func (g *RetryingDirectory) ListByIDs(ctx context.Context, ids []string) (map[string]domain.Business, error) {
	var (
		m   map[string]domain.Business
		err error
	)
	err = g.retry(ctx, "ListByIDs", func() error {
		m, err = g.next.ListByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (g *RetryingDirectory) retry(ctx context.Context, method string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("business directory retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable reports whether the failure is transient: connection loss,
// serialization/deadlock aborts, or a server that is still starting up.
func isRetryable(err error) bool {
	if pgconn.SafeToRetry(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "08") { // connection exception class
			return true
		}
		switch pgErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"57P03": // cannot_connect_now
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
