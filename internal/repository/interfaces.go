package repository

import (
	"context"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
)

// SessionMetricsQuery selects which archived session to aggregate.
type SessionMetricsQuery struct {
	SessionID string
	From      int64 // unix milliseconds, 0 = unbounded
	To        int64 // unix milliseconds, 0 = unbounded
}

// TypeCount is one row of a per-type or per-category breakdown.
type TypeCount struct {
	Key        string
	TotalCount uint64
}

// SessionMetricsResult aggregates one archived session.
type SessionMetricsResult struct {
	SessionID  string
	TotalCount uint64
	FirstSeen  int64 // unix milliseconds
	LastSeen   int64 // unix milliseconds
	ByType     []TypeCount
	ByCategory []TypeCount
}

// EventRepository defines the interface for durable event storage
type EventRepository interface {
	// InsertBatch inserts a batch of events into the storage
	InsertBatch(ctx context.Context, events []*domain.SessionEvent) (int, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error

	// GetSessionMetrics aggregates an archived session
	GetSessionMetrics(ctx context.Context, query SessionMetricsQuery) (*SessionMetricsResult, error)
}
