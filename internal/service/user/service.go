// Package user implements the admin side of account management: approval,
// deactivation and reactivation, password resets to the default password,
// direct account creation and job title changes with their append-only log.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/config"
	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Approve(ctx context.Context, userID uuid.UUID, approvedBy string) (*domain.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID, deactivatedBy string) (*domain.User, error)
	Reactivate(ctx context.Context, userID uuid.UUID, reactivatedBy string) (*domain.User, error)
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, resetBy string) (*domain.User, error)
	UpdateJobTitles(ctx context.Context, userID uuid.UUID, jobTitles []string) (*domain.User, error)
	CreateJobTitleLog(ctx context.Context, log *domain.JobTitleLog) (*domain.JobTitleLog, error)
	ListJobTitleLogs(ctx context.Context, userID uuid.UUID) ([]domain.JobTitleLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides admin account management operations.
type Service struct {
	users userRepo
	tx    txManager
	cfg   config.AuthConfig
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(
	log *slog.Logger,
	users userRepo,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		users: users,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "user"),
	}
}

// requireAdmin resolves the acting admin from the context.
// Returns domain.ErrUnauthorized without an identity, domain.ErrForbidden
// without admin rights. The returned user supplies the audit actor name.
func (s *Service) requireAdmin(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	admin, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve admin: %w", err)
	}
	if !admin.IsAdmin {
		return nil, domain.ErrForbidden
	}

	return admin, nil
}
