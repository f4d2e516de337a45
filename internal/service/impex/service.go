// Package impex implements bulk CSV reconciliation of topics: import of flat
// rows with diff-and-log upserts, the inverse export projection, and the
// paginated content change log view.
package impex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/config"
	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

type topicRepo interface {
	GetByTitle(ctx context.Context, title string) (*domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type contentLogRepo interface {
	CreateBatch(ctx context.Context, logs []domain.ContentChangeLog) error
	List(ctx context.Context, limit, offset int) ([]domain.ContentChangeLog, error)
	Count(ctx context.Context) (int, error)
}

// Service provides CSV import/export and content change log retrieval.
type Service struct {
	topics      topicRepo
	users       userRepo
	contentLogs contentLogRepo
	cfg         config.TrainingConfig
	log         *slog.Logger
}

// NewService creates a new Impex service.
func NewService(
	log *slog.Logger,
	cfg config.TrainingConfig,
	topics topicRepo,
	users userRepo,
	contentLogs contentLogRepo,
) *Service {
	return &Service{
		topics:      topics,
		users:       users,
		contentLogs: contentLogs,
		cfg:         cfg,
		log:         log.With("service", "impex"),
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
