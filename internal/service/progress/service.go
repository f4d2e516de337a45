// Package progress implements quiz attempt recording and the progress views
// built on top of it: the caller's own progress over visible topics and the
// admin summary matrix.
package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

type progressRepo interface {
	RecordAttempt(ctx context.Context, userID, topicID uuid.UUID, passed bool) (*domain.Progress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error)
	ListAll(ctx context.Context) ([]domain.Progress, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
	ListVisibleTo(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
}

// Service provides progress tracking operations.
type Service struct {
	progress progressRepo
	topics   topicRepo
	users    userRepo
	log      *slog.Logger
}

// NewService creates a new Progress service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	topics topicRepo,
	users userRepo,
) *Service {
	return &Service{
		progress: progress,
		topics:   topics,
		users:    users,
		log:      log.With("service", "progress"),
	}
}

// currentUser resolves the authenticated caller.
func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return user, nil
}
