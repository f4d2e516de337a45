// Package contentlog implements the append-only content change history
// repository using PostgreSQL. Diffs are stored as jsonb; import writes many
// entries in one batch.
package contentlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsacademy/training-backend/internal/adapter/postgres"
	"github.com/opsacademy/training-backend/internal/domain"
)

// Repo provides content change log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content change log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const logColumns = `id, topic_id, title, updated_fields, updated_by, created_at`

const createLogSQL = `
INSERT INTO content_change_logs (topic_id, title, updated_fields, updated_by)
VALUES ($1, $2, $3, $4)
RETURNING ` + logColumns

const insertLogSQL = `
INSERT INTO content_change_logs (topic_id, title, updated_fields, updated_by)
VALUES ($1, $2, $3, $4)`

const listLogsSQL = `
SELECT ` + logColumns + `
FROM content_change_logs
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countLogsSQL = `SELECT count(*) FROM content_change_logs`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends one content change log entry and returns the persisted record.
func (r *Repo) Create(ctx context.Context, log *domain.ContentChangeLog) (*domain.ContentChangeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := json.Marshal(log.Updated)
	if err != nil {
		return nil, fmt.Errorf("marshal updated fields: %w", err)
	}

	created, err := scanLogRow(querier.QueryRow(ctx, createLogSQL,
		log.TopicID, log.Title, updated, log.UpdatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "content_change_log", log.TopicID)
	}

	return created, nil
}

// CreateBatch appends many entries in a single pgx batch round trip.
// Used by CSV import, which may touch hundreds of topics per request.
func (r *Repo) CreateBatch(ctx context.Context, logs []domain.ContentChangeLog) error {
	if len(logs) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for i := range logs {
		updated, err := json.Marshal(logs[i].Updated)
		if err != nil {
			return fmt.Errorf("marshal updated fields: %w", err)
		}
		batch.Queue(insertLogSQL, logs[i].TopicID, logs[i].Title, updated, logs[i].UpdatedBy)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range logs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "content_change_log", uuid.Nil)
		}
	}

	return nil
}

// List returns one page of change history, newest first.
// Returns an empty slice (not nil) when the page is past the end.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.ContentChangeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listLogsSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list content change logs: %w", err)
	}
	defer rows.Close()

	result := []domain.ContentChangeLog{}
	for rows.Next() {
		log, err := scanLogRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list content change logs: %w", err)
		}
		result = append(result, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list content change logs: %w", err)
	}

	return result, nil
}

// Count returns the total number of change log entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countLogsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count content change logs: %w", err)
	}

	return count, nil
}

// scanLogRow scans a single row into a domain.ContentChangeLog.
func scanLogRow(row pgx.Row) (*domain.ContentChangeLog, error) {
	var (
		log     domain.ContentChangeLog
		updated []byte
	)

	err := row.Scan(&log.ID, &log.TopicID, &log.Title, &updated, &log.UpdatedBy, &log.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(updated, &log.Updated); err != nil {
		return nil, fmt.Errorf("unmarshal updated fields: %w", err)
	}

	return &log, nil
}
