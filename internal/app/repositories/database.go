package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/personnel/internal/pkg/metrics"
)

// Database is the subset of *pgxpool.Pool the repositories use.
// pgxmock pools satisfy it as well.
type Database interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) (pgx.Tx, error)
	// Exec executes a SQL command and returns the command tag.
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	// Query executes a SQL query and returns the matching rows.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	// QueryRow executes a SQL query that is expected to return a single row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Listing bounds shared by every repository.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Option customises a repository.
type Option func(*base)

// WithQueryTimeout bounds every statement with d. Zero disables the bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(b *base) {
		b.timeout = d
	}
}

// WithMetrics records query durations in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) {
		b.metrics = m
	}
}

// base carries the plumbing every table repository shares.
type base struct {
	db      Database
	sb      squirrel.StatementBuilderType
	timeout time.Duration
	metrics *metrics.Metrics
}

func newBase(db Database, opts ...Option) base {
	b := base{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// begin derives the per-statement context and starts the duration clock.
// The returned func must be called once the statement finished.
func (b base) begin(ctx context.Context, queryType string) (context.Context, func()) {
	start := time.Now()
	cancel := context.CancelFunc(func() {})
	if b.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
	}
	return ctx, func() {
		cancel()
		b.metrics.ObserveQuery(queryType, start)
	}
}

// page clamps skip and limit to the listing bounds.
func page(skip, limit int) (offset, size uint64) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return uint64(skip), uint64(limit)
}
