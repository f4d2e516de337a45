package topic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title    string
	Sections domain.Sections
	ImageURL *string
	Images   domain.SectionImages
	Quiz     []domain.QuizItem
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	errs = append(errs, validateQuiz(i.Quiz)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for updating a topic.
// All content fields are replaced as a unit; there is no partial merge.
type UpdateTopicInput struct {
	TopicID  uuid.UUID
	Title    string
	Sections domain.Sections
	ImageURL *string
	Images   domain.SectionImages
	Quiz     []domain.QuizItem
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	errs = append(errs, validateQuiz(i.Quiz)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateQuiz checks every quiz item: question text, exactly four non-empty
// options, and a correct answer that is one of the options.
func validateQuiz(quiz []domain.QuizItem) []domain.FieldError {
	var errs []domain.FieldError

	if len(quiz) > 4 {
		errs = append(errs, domain.FieldError{Field: "quiz", Message: "max 4 questions"})
	}

	for n, item := range quiz {
		field := fmt.Sprintf("quiz[%d]", n)

		if strings.TrimSpace(item.Question) == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "question required"})
		}
		if len(item.Options) != 4 {
			errs = append(errs, domain.FieldError{Field: field, Message: "exactly 4 options required"})
		} else {
			for _, opt := range item.Options {
				if strings.TrimSpace(opt) == "" {
					errs = append(errs, domain.FieldError{Field: field, Message: "options must be non-empty"})
					break
				}
			}
		}
		if item.CorrectAnswer == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "correct answer required"})
		} else if len(item.Options) == 4 && !slices.Contains(item.Options, item.CorrectAnswer) {
			errs = append(errs, domain.FieldError{Field: field, Message: "correct answer must match an option"})
		}
	}

	return errs
}
