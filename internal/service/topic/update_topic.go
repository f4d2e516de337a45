package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opsacademy/training-backend/internal/domain"
)

// UpdateTopic replaces a topic's content fields and records a change log
// entry carrying the field-level diff. When neither content nor quiz
// actually changed, no log entry is written. Admin only.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	newContent := domain.RenderContent(input.Sections)
	newQuiz := input.Quiz
	if newQuiz == nil {
		newQuiz = []domain.QuizItem{}
	}

	updated := domain.UpdatedFields{}
	if newContent != current.Content {
		updated.Content = &domain.ContentChange{From: current.Content, To: newContent}
	}
	if !domain.QuizEqual(current.Quiz, newQuiz) {
		updated.Quiz = &domain.QuizChange{From: current.Quiz, To: newQuiz}
	}

	var result *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		result, updateErr = s.topics.Update(txCtx, &domain.Topic{
			ID:       input.TopicID,
			Title:    strings.TrimSpace(input.Title),
			Content:  newContent,
			ImageURL: input.ImageURL,
			Images:   input.Images,
			Quiz:     newQuiz,
		})
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		if updated.IsEmpty() {
			return nil
		}

		if _, logErr := s.contentLogs.Create(txCtx, &domain.ContentChangeLog{
			TopicID:   result.ID,
			Title:     result.Title,
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

	s.log.InfoContext(ctx, "topic updated",
		slog.String("topic_id", result.ID.String()),
		slog.Bool("content_changed", updated.Content != nil),
		slog.Bool("quiz_changed", updated.Quiz != nil),
		slog.String("updated_by", admin.Name),
	)

	return result, nil
}
