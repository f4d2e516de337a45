// Package topic implements training topic management: CRUD over topics and
// the visibility views derived from assignments. Content and quiz updates
// write the content change log; assignment changes live in the assignment
// service.
package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetByTitle(ctx context.Context, title string) (*domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	Delete(ctx context.Context, topicID uuid.UUID) error
	List(ctx context.Context) ([]domain.Topic, error)
	ListVisibleTo(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error)
	ListAssignedTo(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error)
	ListAnyAssigned(ctx context.Context) ([]domain.Topic, error)
	ListUnassigned(ctx context.Context) ([]domain.Topic, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type contentLogRepo interface {
	Create(ctx context.Context, log *domain.ContentChangeLog) (*domain.ContentChangeLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic management operations.
type Service struct {
	topics      topicRepo
	users       userRepo
	contentLogs contentLogRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	users userRepo,
	contentLogs contentLogRepo,
	tx txManager,
) *Service {
	return &Service{
		topics:      topics,
		users:       users,
		contentLogs: contentLogs,
		tx:          tx,
		log:         log.With("service", "topic"),
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
