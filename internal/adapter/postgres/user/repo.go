// Package user implements the User repository using PostgreSQL.
// Besides CRUD it carries the account lifecycle updates (approve, deactivate,
// reactivate, password reset) and the job_title_logs audit table.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsacademy/training-backend/internal/adapter/postgres"
	"github.com/opsacademy/training-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const userColumns = `id, name, mobile, password_hash, job_titles, is_admin, must_change_password, active,
    approved_by, approved_at, deactivated_by, deactivated_at, reactivated_by, reactivated_at,
    password_reset_by, password_reset_at, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (name, mobile, password_hash, job_titles, is_admin, must_change_password)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByMobileSQL = `
SELECT ` + userColumns + `
FROM users
WHERE mobile = $1`

const approveUserSQL = `
UPDATE users
SET approved_by = $2, approved_at = now(), updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const deactivateUserSQL = `
UPDATE users
SET active = false, deactivated_by = $2, deactivated_at = now(), updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const reactivateUserSQL = `
UPDATE users
SET active = true, reactivated_by = $2, reactivated_at = now(), updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updatePasswordSQL = `
UPDATE users
SET password_hash = $2, must_change_password = $3, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const resetPasswordSQL = `
UPDATE users
SET password_hash = $2, must_change_password = true,
    password_reset_by = $3, password_reset_at = now(), updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updateJobTitlesSQL = `
UPDATE users
SET job_titles = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const createJobTitleLogSQL = `
INSERT INTO job_title_logs (user_id, changed_by, job_titles)
VALUES ($1, $2, $3)
RETURNING id, user_id, changed_by, job_titles, created_at`

const listJobTitleLogsSQL = `
SELECT id, user_id, changed_by, job_titles, created_at
FROM job_title_logs
WHERE user_id = $1
ORDER BY created_at DESC`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUserRow(querier.QueryRow(ctx, getUserByIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetByMobile returns a user by mobile number, the login identifier.
// Returns domain.ErrNotFound if no user carries the number.
func (r *Repo) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUserRow(querier.QueryRow(ctx, getUserByMobileSQL, mobile))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// List returns users matching the filter, newest first.
// Returns an empty slice (not nil) when no users match.
func (r *Repo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := squirrel.Select(
		"id", "name", "mobile", "password_hash", "job_titles", "is_admin", "must_change_password", "active",
		"approved_by", "approved_at", "deactivated_by", "deactivated_at", "reactivated_by", "reactivated_at",
		"password_reset_by", "password_reset_at", "created_at", "updated_at",
	).
		From("users").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Active != nil {
		builder = builder.Where(squirrel.Eq{"active": *filter.Active})
	}
	if filter.Approved != nil {
		if *filter.Approved {
			builder = builder.Where("approved_by IS NOT NULL")
		} else {
			builder = builder.Where("approved_by IS NULL")
		}
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list users: build query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	result, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the mobile number is taken.
func (r *Repo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	jobTitles := user.JobTitles
	if jobTitles == nil {
		jobTitles = []string{}
	}

	created, err := scanUserRow(querier.QueryRow(ctx, createUserSQL,
		user.Name, user.Mobile, user.PasswordHash, jobTitles, user.IsAdmin, user.MustChangePassword,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return created, nil
}

// Approve marks the user as approved by the named admin.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) Approve(ctx context.Context, userID uuid.UUID, approvedBy string) (*domain.User, error) {
	return r.updateReturning(ctx, userID, approveUserSQL, approvedBy)
}

// Deactivate disables the account and records the actor.
func (r *Repo) Deactivate(ctx context.Context, userID uuid.UUID, deactivatedBy string) (*domain.User, error) {
	return r.updateReturning(ctx, userID, deactivateUserSQL, deactivatedBy)
}

// Reactivate re-enables the account and records the actor.
func (r *Repo) Reactivate(ctx context.Context, userID uuid.UUID, reactivatedBy string) (*domain.User, error) {
	return r.updateReturning(ctx, userID, reactivateUserSQL, reactivatedBy)
}

// UpdatePassword replaces the password hash and sets the must-change flag.
func (r *Repo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string, mustChange bool) (*domain.User, error) {
	return r.updateReturning(ctx, userID, updatePasswordSQL, passwordHash, mustChange)
}

// ResetPassword replaces the password hash on behalf of an admin, forcing a
// change on next login and recording the actor.
func (r *Repo) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, resetBy string) (*domain.User, error) {
	return r.updateReturning(ctx, userID, resetPasswordSQL, passwordHash, resetBy)
}

// UpdateJobTitles replaces the user's job title set.
func (r *Repo) UpdateJobTitles(ctx context.Context, userID uuid.UUID, jobTitles []string) (*domain.User, error) {
	if jobTitles == nil {
		jobTitles = []string{}
	}
	return r.updateReturning(ctx, userID, updateJobTitlesSQL, jobTitles)
}

func (r *Repo) updateReturning(ctx context.Context, userID uuid.UUID, sql string, args ...any) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	queryArgs := append([]any{userID}, args...)
	u, err := scanUserRow(querier.QueryRow(ctx, sql, queryArgs...))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Job title logs
// ---------------------------------------------------------------------------

// CreateJobTitleLog appends a job title change record for the user.
func (r *Repo) CreateJobTitleLog(ctx context.Context, log *domain.JobTitleLog) (*domain.JobTitleLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	jobTitles := log.JobTitles
	if jobTitles == nil {
		jobTitles = []string{}
	}

	var created domain.JobTitleLog
	err := querier.QueryRow(ctx, createJobTitleLogSQL, log.UserID, log.ChangedBy, jobTitles).
		Scan(&created.ID, &created.UserID, &created.ChangedBy, &created.JobTitles, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "job_title_log", log.UserID)
	}

	return &created, nil
}

// ListJobTitleLogs returns a user's job title change history, newest first.
// Returns an empty slice (not nil) when the user has no history.
func (r *Repo) ListJobTitleLogs(ctx context.Context, userID uuid.UUID) ([]domain.JobTitleLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listJobTitleLogsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list job title logs: %w", err)
	}
	defer rows.Close()

	result := []domain.JobTitleLog{}
	for rows.Next() {
		var log domain.JobTitleLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.ChangedBy, &log.JobTitles, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("list job title logs: %w", err)
		}
		result = append(result, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list job title logs: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanUserRow scans a single row into a domain.User.
func scanUserRow(row pgx.Row) (*domain.User, error) {
	var (
		u               domain.User
		approvedBy      pgtype.Text
		approvedAt      pgtype.Timestamptz
		deactivatedBy   pgtype.Text
		deactivatedAt   pgtype.Timestamptz
		reactivatedBy   pgtype.Text
		reactivatedAt   pgtype.Timestamptz
		passwordResetBy pgtype.Text
		passwordResetAt pgtype.Timestamptz
	)

	err := row.Scan(
		&u.ID, &u.Name, &u.Mobile, &u.PasswordHash, &u.JobTitles, &u.IsAdmin, &u.MustChangePassword, &u.Active,
		&approvedBy, &approvedAt, &deactivatedBy, &deactivatedAt, &reactivatedBy, &reactivatedAt,
		&passwordResetBy, &passwordResetAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if u.JobTitles == nil {
		u.JobTitles = []string{}
	}
	u.ApprovedBy, u.ApprovedAt = optionalAudit(approvedBy, approvedAt)
	u.DeactivatedBy, u.DeactivatedAt = optionalAudit(deactivatedBy, deactivatedAt)
	u.ReactivatedBy, u.ReactivatedAt = optionalAudit(reactivatedBy, reactivatedAt)
	u.PasswordResetBy, u.PasswordResetAt = optionalAudit(passwordResetBy, passwordResetAt)

	return &u, nil
}

func optionalAudit(by pgtype.Text, at pgtype.Timestamptz) (*string, *time.Time) {
	var (
		byPtr *string
		atPtr *time.Time
	)
	if by.Valid {
		byPtr = &by.String
	}
	if at.Valid {
		atPtr = &at.Time
	}
	return byPtr, atPtr
}

// scanUsers scans multiple rows into a domain.User slice.
// Returns an empty slice (not nil) when no rows matched.
func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var result []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.User{}
	}

	return result, nil
}
