// Package topic implements the Topic repository using PostgreSQL.
// It provides CRUD operations, visibility queries over the job_titles and
// assigned_to arrays, and atomic set mutations used by assignment.
package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsacademy/training-backend/internal/adapter/postgres"
	"github.com/opsacademy/training-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const topicColumns = `id, title, content, image_url, images, quiz, job_titles, assigned_to, version, created_at, updated_at`

const createTopicSQL = `
INSERT INTO topics (title, content, image_url, images, quiz, job_titles, assigned_to)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + topicColumns

const getTopicByIDSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE id = $1`

const getTopicByTitleSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE lower(title) = lower($1)`

const listTopicsSQL = `
SELECT ` + topicColumns + `
FROM topics
ORDER BY created_at DESC`

// Visibility is the union of three grants: a job title shared with the user,
// a direct per-user assignment, and the "All" wildcard job title.
const listVisibleTopicsSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE job_titles && $1
   OR $2 = ANY(assigned_to)
   OR $3 = ANY(job_titles)
ORDER BY created_at DESC`

const listAssignedTopicsSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE $1 = ANY(assigned_to)
ORDER BY created_at DESC`

// The admin view of assignments: every topic that has been assigned to
// anyone, whether through a job title or a direct assignee.
const listAnyAssignedTopicsSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE cardinality(job_titles) > 0 OR cardinality(assigned_to) > 0
ORDER BY created_at DESC`

const listUnassignedTopicsSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE cardinality(job_titles) = 0 AND cardinality(assigned_to) = 0
ORDER BY created_at DESC`

const updateTopicSQL = `
UPDATE topics
SET title = $2,
    content = $3,
    image_url = $4,
    images = $5,
    quiz = $6,
    version = version + 1,
    updated_at = now()
WHERE id = $1
RETURNING ` + topicColumns

const deleteTopicSQL = `DELETE FROM topics WHERE id = $1`

const topicExistsSQL = `SELECT EXISTS(SELECT 1 FROM topics WHERE id = $1)`

// Conditional set mutations. The WHERE clause makes each statement a no-op
// when the membership already holds, so the rows-affected count doubles as
// the "assignment actually changed" signal and concurrent writers cannot
// lose each other's updates.
const addJobTitleSQL = `
UPDATE topics
SET job_titles = array_append(job_titles, $2),
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND NOT ($2 = ANY(job_titles))`

const removeJobTitleSQL = `
UPDATE topics
SET job_titles = array_remove(job_titles, $2),
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND $2 = ANY(job_titles)`

const addAssigneeSQL = `
UPDATE topics
SET assigned_to = array_append(assigned_to, $2),
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND NOT ($2 = ANY(assigned_to))`

const removeAssigneeSQL = `
UPDATE topics
SET assigned_to = array_remove(assigned_to, $2),
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND $2 = ANY(assigned_to)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopicRow(querier.QueryRow(ctx, getTopicByIDSQL, topicID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return t, nil
}

// GetByTitle returns a topic by exact title match, case-insensitive.
// Returns domain.ErrNotFound if no topic carries the title.
func (r *Repo) GetByTitle(ctx context.Context, title string) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopicRow(querier.QueryRow(ctx, getTopicByTitleSQL, title))
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return t, nil
}

// List returns all topics ordered by creation time, newest first.
// Returns an empty slice (not nil) when no topics exist.
func (r *Repo) List(ctx context.Context) ([]domain.Topic, error) {
	return r.queryTopics(ctx, "list topics", listTopicsSQL)
}

// ListVisibleTo returns topics visible to a user: topics sharing a job title
// with the user, topics directly assigned to the user, and topics carrying
// the "All" wildcard job title. Newest first.
func (r *Repo) ListVisibleTo(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error) {
	if jobTitles == nil {
		jobTitles = []string{}
	}
	return r.queryTopics(ctx, "list visible topics", listVisibleTopicsSQL, jobTitles, userID, domain.JobTitleAll)
}

// ListAssignedTo returns topics directly assigned to a user, newest first.
func (r *Repo) ListAssignedTo(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error) {
	return r.queryTopics(ctx, "list assigned topics", listAssignedTopicsSQL, userID)
}

// ListAnyAssigned returns topics holding at least one job title or direct
// assignee, newest first. Together with ListUnassigned it partitions the
// topic set.
func (r *Repo) ListAnyAssigned(ctx context.Context) ([]domain.Topic, error) {
	return r.queryTopics(ctx, "list any-assigned topics", listAnyAssignedTopicsSQL)
}

// ListUnassigned returns topics with no job titles and no direct assignees,
// newest first.
func (r *Repo) ListUnassigned(ctx context.Context) ([]domain.Topic, error) {
	return r.queryTopics(ctx, "list unassigned topics", listUnassignedTopicsSQL)
}

func (r *Repo) queryTopics(ctx context.Context, op, sql string, args ...any) ([]domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result, err := scanTopics(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted domain.Topic.
// Returns domain.ErrAlreadyExists if a topic with the same title exists
// (titles are unique case-insensitively).
func (r *Repo) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	images, quiz, err := marshalJSONFields(topic)
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	jobTitles := topic.JobTitles
	if jobTitles == nil {
		jobTitles = []string{}
	}
	assignedTo := topic.AssignedTo
	if assignedTo == nil {
		assignedTo = []uuid.UUID{}
	}

	created, err := scanTopicRow(querier.QueryRow(ctx, createTopicSQL,
		topic.Title, topic.Content, topic.ImageURL, images, quiz, jobTitles, assignedTo,
	))
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return created, nil
}

// Update replaces a topic's title, content, image and quiz, bumps the version
// and returns the updated row.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	images, quiz, err := marshalJSONFields(topic)
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	updated, err := scanTopicRow(querier.QueryRow(ctx, updateTopicSQL,
		topic.ID, topic.Title, topic.Content, topic.ImageURL, images, quiz,
	))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topic.ID)
	}

	return updated, nil
}

// Delete removes a topic. Progress rows cascade; audit logs are kept.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, topicID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteTopicSQL, topicID)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Atomic set mutations
// ---------------------------------------------------------------------------

// AddJobTitle grants a job title on a topic. Returns true when the grant was
// new, false when the title was already present (no row touched, no version
// bump). Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) AddJobTitle(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error) {
	return r.mutateSet(ctx, topicID, addJobTitleSQL, jobTitle)
}

// RemoveJobTitle revokes a job title from a topic. Returns true when the
// title was present and removed, false when it was already absent.
func (r *Repo) RemoveJobTitle(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error) {
	return r.mutateSet(ctx, topicID, removeJobTitleSQL, jobTitle)
}

// AddAssignee assigns a topic directly to a user. Returns true when the
// assignment was new, false when the user was already assigned.
func (r *Repo) AddAssignee(ctx context.Context, topicID, userID uuid.UUID) (bool, error) {
	return r.mutateSet(ctx, topicID, addAssigneeSQL, userID)
}

// RemoveAssignee removes a direct user assignment. Returns true when the
// user was assigned and removed, false when they were not assigned.
func (r *Repo) RemoveAssignee(ctx context.Context, topicID, userID uuid.UUID) (bool, error) {
	return r.mutateSet(ctx, topicID, removeAssigneeSQL, userID)
}

// mutateSet runs one conditional array update. Zero rows affected means
// either "no change needed" or "topic missing"; an existence probe tells
// the two apart.
func (r *Repo) mutateSet(ctx context.Context, topicID uuid.UUID, sql string, value any) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, topicID, value)
	if err != nil {
		return false, postgres.MapError(err, "topic", topicID)
	}

	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err := querier.QueryRow(ctx, topicExistsSQL, topicID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "topic", topicID)
	}
	if !exists {
		return false, fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return false, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func marshalJSONFields(topic *domain.Topic) (images, quiz []byte, err error) {
	images, err = json.Marshal(topic.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal images: %w", err)
	}

	q := topic.Quiz
	if q == nil {
		q = []domain.QuizItem{}
	}
	quiz, err = json.Marshal(q)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal quiz: %w", err)
	}

	return images, quiz, nil
}

// scanTopicRow scans a single row into a domain.Topic.
func scanTopicRow(row pgx.Row) (*domain.Topic, error) {
	var (
		t         domain.Topic
		imageURL  pgtype.Text
		images    []byte
		quiz      []byte
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(
		&t.ID, &t.Title, &t.Content, &imageURL, &images, &quiz,
		&t.JobTitles, &t.AssignedTo, &t.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		t.ImageURL = &imageURL.String
	}
	if err := json.Unmarshal(images, &t.Images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %w", err)
	}
	if err := json.Unmarshal(quiz, &t.Quiz); err != nil {
		return nil, fmt.Errorf("unmarshal quiz: %w", err)
	}
	if t.Quiz == nil {
		t.Quiz = []domain.QuizItem{}
	}
	if t.JobTitles == nil {
		t.JobTitles = []string{}
	}
	if t.AssignedTo == nil {
		t.AssignedTo = []uuid.UUID{}
	}

	t.CreatedAt = createdAt
	t.UpdatedAt = updatedAt

	return &t, nil
}

// scanTopics scans multiple rows into a domain.Topic slice.
// Returns an empty slice (not nil) when no rows matched.
func scanTopics(rows pgx.Rows) ([]domain.Topic, error) {
	var result []domain.Topic
	for rows.Next() {
		t, err := scanTopicRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Topic{}
	}

	return result, nil
}
