// Package assignmentlog implements the append-only assignment history
// repository using PostgreSQL. Entries have no foreign key to topics so that
// history survives topic deletion.
package assignmentlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsacademy/training-backend/internal/adapter/postgres"
	"github.com/opsacademy/training-backend/internal/domain"
)

// Repo provides assignment log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const logColumns = `id, topic_id, action, entity_type, entity_value, changed_by, created_at`

const createLogSQL = `
INSERT INTO assignment_logs (topic_id, action, entity_type, entity_value, changed_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + logColumns

const listByTopicSQL = `
SELECT ` + logColumns + `
FROM assignment_logs
WHERE topic_id = $1
ORDER BY created_at DESC`

const listByTopicIDsSQL = `
SELECT ` + logColumns + `
FROM assignment_logs
WHERE topic_id = ANY($1::uuid[])
ORDER BY topic_id, created_at DESC`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends one assignment log entry and returns the persisted record.
func (r *Repo) Create(ctx context.Context, log *domain.AssignmentLog) (*domain.AssignmentLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLogRow(querier.QueryRow(ctx, createLogSQL,
		log.TopicID, string(log.Action), string(log.EntityType), log.EntityValue, log.ChangedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "assignment_log", log.TopicID)
	}

	return created, nil
}

// ListByTopic returns a topic's assignment history, newest first.
// Returns an empty slice (not nil) when the topic has no history.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.AssignmentLog, error) {
	return r.queryLogs(ctx, listByTopicSQL, topicID)
}

// ListByTopicIDs returns assignment history for multiple topics in one round
// trip, ordered by topic then newest first. The caller groups by TopicID.
func (r *Repo) ListByTopicIDs(ctx context.Context, topicIDs []uuid.UUID) ([]domain.AssignmentLog, error) {
	if len(topicIDs) == 0 {
		return []domain.AssignmentLog{}, nil
	}
	return r.queryLogs(ctx, listByTopicIDsSQL, topicIDs)
}

func (r *Repo) queryLogs(ctx context.Context, sql string, args ...any) ([]domain.AssignmentLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignment logs: %w", err)
	}
	defer rows.Close()

	result := []domain.AssignmentLog{}
	for rows.Next() {
		log, err := scanLogRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list assignment logs: %w", err)
		}
		result = append(result, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignment logs: %w", err)
	}

	return result, nil
}

// scanLogRow scans a single row into a domain.AssignmentLog.
func scanLogRow(row pgx.Row) (*domain.AssignmentLog, error) {
	var (
		log        domain.AssignmentLog
		action     string
		entityType string
	)

	err := row.Scan(&log.ID, &log.TopicID, &action, &entityType, &log.EntityValue, &log.ChangedBy, &log.CreatedAt)
	if err != nil {
		return nil, err
	}

	log.Action = domain.AssignmentAction(action)
	log.EntityType = domain.AssignmentEntity(entityType)

	return &log, nil
}
