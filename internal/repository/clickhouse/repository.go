package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Damatnic/astral-turf-fifa-sub012/internal/domain"
	"github.com/Damatnic/astral-turf-fifa-sub012/internal/repository"
)

// Repository implements EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the session_events table. ReplacingMergeTree keyed
// on event_id makes re-delivered SQS batches idempotent.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS session_events (
		event_id String,
		session_id String,
		type LowCardinality(String),
		category LowCardinality(String),
		timestamp Int64,
		data String,
		user_agent String,
		viewport_width Int32,
		viewport_height Int32,
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (event_id)
	ORDER BY (event_id, timestamp)
	PARTITION BY toYYYYMM(toDateTime(intDiv(timestamp, 1000)))
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create session_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized")
	return nil
}

// InsertBatch inserts a batch of session events into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.SessionEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO session_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	version := uint64(time.Now().UnixNano())

	insertedCount := 0
	for _, event := range events {
		dataJSON := "{}"
		if len(event.Data) > 0 {
			raw, err := json.Marshal(event.Data)
			if err != nil {
				return 0, fmt.Errorf("failed to encode event data for %s: %w", event.ID, err)
			}
			dataJSON = string(raw)
		}

		err := batch.Append(
			event.ID,
			event.Metadata.SessionID,
			string(event.Type),
			string(event.Category),
			event.Timestamp,
			dataJSON,
			event.Metadata.UserAgent,
			int32(event.Metadata.Viewport.Width),
			int32(event.Metadata.Viewport.Height),
			time.Now(),
			version,
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// GetSessionMetrics aggregates an archived session: total count, first/last
// event timestamps and per-type / per-category breakdowns.
func (r *Repository) GetSessionMetrics(ctx context.Context, query repository.SessionMetricsQuery) (*repository.SessionMetricsResult, error) {
	result := &repository.SessionMetricsResult{
		SessionID: query.SessionID,
	}

	whereClause := "WHERE session_id = ?"
	args := []interface{}{query.SessionID}
	if query.From > 0 {
		whereClause += " AND timestamp >= ?"
		args = append(args, query.From)
	}
	if query.To > 0 {
		whereClause += " AND timestamp <= ?"
		args = append(args, query.To)
	}

	overallQuery := fmt.Sprintf(`
		SELECT
			count() AS total_count,
			coalesce(min(timestamp), 0) AS first_seen,
			coalesce(max(timestamp), 0) AS last_seen
		FROM session_events FINAL
		%s
	`, whereClause)

	row := r.client.Conn().QueryRow(ctx, overallQuery, args...)
	if err := row.Scan(&result.TotalCount, &result.FirstSeen, &result.LastSeen); err != nil {
		return nil, fmt.Errorf("failed to query session totals: %w", err)
	}

	byType, err := r.breakdown(ctx, "type", whereClause, args)
	if err != nil {
		return nil, err
	}
	result.ByType = byType

	byCategory, err := r.breakdown(ctx, "category", whereClause, args)
	if err != nil {
		return nil, err
	}
	result.ByCategory = byCategory

	return result, nil
}

func (r *Repository) breakdown(ctx context.Context, column, whereClause string, args []interface{}) ([]repository.TypeCount, error) {
	query := fmt.Sprintf(`
		SELECT
			%s AS key,
			count() AS total_count
		FROM session_events FINAL
		%s
		GROUP BY %s
		ORDER BY total_count DESC
	`, column, whereClause, column)

	rows, err := r.client.Conn().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s breakdown: %w", column, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close breakdown rows", zap.Error(err))
		}
	}()

	var counts []repository.TypeCount
	for rows.Next() {
		var tc repository.TypeCount
		if err := rows.Scan(&tc.Key, &tc.TotalCount); err != nil {
			return nil, fmt.Errorf("failed to scan %s breakdown row: %w", column, err)
		}
		counts = append(counts, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s breakdown rows: %w", column, err)
	}

	return counts, nil
}
