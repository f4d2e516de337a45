// Package progress implements quiz progress persistence using PostgreSQL.
// One row per (user, topic); Completed is a latch that upserts never lower.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsacademy/training-backend/internal/adapter/postgres"
	"github.com/opsacademy/training-backend/internal/domain"
)

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const progressColumns = `user_id, topic_id, completed, attempts, updated_at`

// The OR keeps Completed a latch: a failed attempt after a pass does not
// un-complete the topic.
const recordAttemptSQL = `
INSERT INTO progress (user_id, topic_id, completed, attempts)
VALUES ($1, $2, $3, 1)
ON CONFLICT (user_id, topic_id) DO UPDATE
SET completed = progress.completed OR EXCLUDED.completed,
    attempts = progress.attempts + 1,
    updated_at = now()
RETURNING ` + progressColumns

const getProgressSQL = `
SELECT ` + progressColumns + `
FROM progress
WHERE user_id = $1 AND topic_id = $2`

const listByUserSQL = `
SELECT ` + progressColumns + `
FROM progress
WHERE user_id = $1`

const listAllSQL = `
SELECT ` + progressColumns + `
FROM progress`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// RecordAttempt upserts one quiz attempt. Attempts always increments;
// Completed latches true once passed is true.
// Returns domain.ErrNotFound if the user or topic does not exist.
func (r *Repo) RecordAttempt(ctx context.Context, userID, topicID uuid.UUID, passed bool) (*domain.Progress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgressRow(querier.QueryRow(ctx, recordAttemptSQL, userID, topicID, passed))
	if err != nil {
		return nil, postgres.MapError(err, "progress", topicID)
	}

	return p, nil
}

// Get returns the progress row for one (user, topic) pair.
// Returns domain.ErrNotFound if no attempt was recorded yet.
func (r *Repo) Get(ctx context.Context, userID, topicID uuid.UUID) (*domain.Progress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgressRow(querier.QueryRow(ctx, getProgressSQL, userID, topicID))
	if err != nil {
		return nil, postgres.MapError(err, "progress", topicID)
	}

	return p, nil
}

// ListByUser returns all progress rows for one user.
// Returns an empty slice (not nil) when the user has no attempts.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error) {
	return r.queryProgress(ctx, listByUserSQL, userID)
}

// ListAll returns every progress row, for the admin summary.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Progress, error) {
	return r.queryProgress(ctx, listAllSQL)
}

func (r *Repo) queryProgress(ctx context.Context, sql string, args ...any) ([]domain.Progress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	result := []domain.Progress{}
	for rows.Next() {
		p, err := scanProgressRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list progress: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	return result, nil
}

// scanProgressRow scans a single row into a domain.Progress.
func scanProgressRow(row pgx.Row) (*domain.Progress, error) {
	var p domain.Progress
	if err := row.Scan(&p.UserID, &p.TopicID, &p.Completed, &p.Attempts, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
