package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opsacademy/training-backend/internal/domain"
)

// CreateTopic creates a new topic from section texts and logs the creation
// in the content change history. Admin only.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	content := domain.RenderContent(input.Sections)
	quiz := input.Quiz
	if quiz == nil {
		quiz = []domain.QuizItem{}
	}

	var topic *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		topic, createErr = s.topics.Create(txCtx, &domain.Topic{
			Title:    title,
			Content:  content,
			ImageURL: input.ImageURL,
			Images:   input.Images,
			Quiz:     quiz,
		})
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		updated := domain.UpdatedFields{
			Content: &domain.ContentChange{From: "", To: content},
		}
		if len(quiz) > 0 {
			updated.Quiz = &domain.QuizChange{From: []domain.QuizItem{}, To: quiz}
		}

		if _, logErr := s.contentLogs.Create(txCtx, &domain.ContentChangeLog{
			TopicID:   topic.ID,
			Title:     topic.Title,
			Updated:   updated,
			UpdatedBy: admin.Name,
		}); logErr != nil {
			return fmt.Errorf("content change log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("title", topic.Title),
		slog.String("created_by", admin.Name),
	)

	return topic, nil
}
