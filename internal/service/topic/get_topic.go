package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

// GetTopic returns one topic. Admins see every topic; other users only
// topics visible to them, otherwise domain.ErrForbidden.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if ctxutil.IsAdminCtx(ctx) {
		return topic, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if !topic.VisibleTo(user) {
		return nil, domain.ErrForbidden
	}

	return topic, nil
}

// GetTopicByTitle finds one topic by exact title, case-insensitively.
// The same visibility rules as GetTopic apply.
func (s *Service) GetTopicByTitle(ctx context.Context, title string) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(title) == "" {
		return nil, domain.NewValidationError("title", "required")
	}

	topic, err := s.topics.GetByTitle(ctx, strings.TrimSpace(title))
	if err != nil {
		return nil, fmt.Errorf("get topic by title: %w", err)
	}

	if ctxutil.IsAdminCtx(ctx) {
		return topic, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if !topic.VisibleTo(user) {
		return nil, domain.ErrForbidden
	}

	return topic, nil
}
