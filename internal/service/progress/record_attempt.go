package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// AttemptInput holds a submitted quiz attempt: one answer per quiz item,
// in item order.
type AttemptInput struct {
	TopicID uuid.UUID
	Answers []string
}

// Validate checks all fields and collects all errors.
func (i AttemptInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if len(i.Answers) == 0 {
		errs = append(errs, domain.FieldError{Field: "answers", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AttemptResult reports how a recorded attempt was scored.
type AttemptResult struct {
	Passed   bool
	Correct  int
	Total    int
	Progress *domain.Progress
}

// RecordAttempt scores a quiz attempt against the stored quiz and records
// it. The pass verdict is computed server side, never taken from the
// client: an attempt passes only when every answer matches the stored
// correct answer. Completion latches, failed retries after a pass only bump
// the attempt counter. The topic must be visible to the caller.
func (s *Service) RecordAttempt(ctx context.Context, input AttemptInput) (*AttemptResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if !user.IsAdmin && !topic.VisibleTo(user) {
		return nil, domain.ErrForbidden
	}

	if len(topic.Quiz) == 0 {
		return nil, domain.NewValidationError("topic_id", "topic has no quiz")
	}
	if len(input.Answers) != len(topic.Quiz) {
		return nil, domain.NewValidationError("answers",
			fmt.Sprintf("expected %d answers, got %d", len(topic.Quiz), len(input.Answers)))
	}

	correct := 0
	for i, item := range topic.Quiz {
		if input.Answers[i] == item.CorrectAnswer {
			correct++
		}
	}
	passed := correct == len(topic.Quiz)

	recorded, err := s.progress.RecordAttempt(ctx, user.ID, input.TopicID, passed)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	s.log.InfoContext(ctx, "attempt recorded",
		slog.String("user_id", user.ID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.Bool("passed", passed),
		slog.Int("attempts", recorded.Attempts),
	)

	return &AttemptResult{
		Passed:   passed,
		Correct:  correct,
		Total:    len(topic.Quiz),
		Progress: recorded,
	}, nil
}
