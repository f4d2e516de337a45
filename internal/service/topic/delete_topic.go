package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// DeleteTopic removes a topic. Progress rows cascade away; assignment and
// content change history is kept. Admin only.
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return err
	}
	if topicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}

	if err := s.topics.Delete(ctx, topicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", topicID.String()),
		slog.String("deleted_by", admin.Name),
	)

	return nil
}
