// Package assignment implements topic assignment: granting and revoking
// visibility by job title or direct user assignment, with an append-only
// audit trail. Membership changes and their log entries commit together;
// no-op changes (already assigned, already absent) never log.
package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListUnassigned(ctx context.Context) ([]domain.Topic, error)
	AddJobTitle(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error)
	RemoveJobTitle(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error)
	AddAssignee(ctx context.Context, topicID, userID uuid.UUID) (bool, error)
	RemoveAssignee(ctx context.Context, topicID, userID uuid.UUID) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type logRepo interface {
	Create(ctx context.Context, log *domain.AssignmentLog) (*domain.AssignmentLog, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.AssignmentLog, error)
	ListByTopicIDs(ctx context.Context, topicIDs []uuid.UUID) ([]domain.AssignmentLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides assignment operations.
type Service struct {
	topics topicRepo
	users  userRepo
	logs   logRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Assignment service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	users userRepo,
	logs logRepo,
	tx txManager,
) *Service {
	return &Service{
		topics: topics,
		users:  users,
		logs:   logs,
		tx:     tx,
		log:    log.With("service", "assignment"),
	}
}

// Result reports what an assign or unassign call actually did.
// Changed counts effective membership changes; it equals the number of
// audit entries written. Requested minus Changed were no-ops.
type Result struct {
	Requested int
	Changed   int
}

// requireAdmin resolves the acting admin from the context.
// The returned user's name is recorded as the audit actor; it is never
// taken from the request payload.
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
