package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsacademy/training-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an approved, active user with the given job titles.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, jobTitles ...string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	approvedBy := "Seed Admin"
	if jobTitles == nil {
		jobTitles = []string{}
	}
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Mobile:       "9" + suffix[:4] + suffix[4:8] + "0",
		PasswordHash: "$2a$10$seedseedseedseedseedseedseedseedseedseedseedseedseed",
		JobTitles:    jobTitles,
		Active:       true,
		ApprovedBy:   &approvedBy,
		ApprovedAt:   &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, mobile, password_hash, job_titles, is_admin, active, approved_by, approved_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.Name, user.Mobile, user.PasswordHash, user.JobTitles,
		user.IsAdmin, user.Active, user.ApprovedBy, user.ApprovedAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAdmin creates an approved admin user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	approvedBy := "Seed Admin"
	admin := domain.User{
		ID:           uuid.New(),
		Name:         "Test Admin " + suffix,
		Mobile:       "8" + suffix[:4] + suffix[4:8] + "0",
		PasswordHash: "$2a$10$seedseedseedseedseedseedseedseedseedseedseedseedseed",
		JobTitles:    []string{},
		IsAdmin:      true,
		Active:       true,
		ApprovedBy:   &approvedBy,
		ApprovedAt:   &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, mobile, password_hash, job_titles, is_admin, active, approved_by, approved_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		admin.ID, admin.Name, admin.Mobile, admin.PasswordHash, admin.JobTitles,
		admin.IsAdmin, admin.Active, admin.ApprovedBy, admin.ApprovedAt, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin insert user: %v", err)
	}

	return admin
}

// SeedTopic creates a topic with rendered content and no assignments.
// Returns a filled domain.Topic.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, title string) domain.Topic {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID: uuid.New(),
		Title: title,
		Content: domain.RenderContent(domain.Sections{
			Objective: "Learn " + title,
			Process:   "Step by step",
			Task:      "Do the task",
			SelfCheck: "Check yourself",
		}),
		JobTitles:  []string{},
		AssignedTo: []uuid.UUID{},
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, title, content, job_titles, assigned_to, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		topic.ID, topic.Title, topic.Content, topic.JobTitles, topic.AssignedTo,
		topic.Version, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}
