package assignment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// ChangeInput holds the parameters for one assign or unassign call.
// Both target kinds may be given at once; they are applied in a single
// transaction.
type ChangeInput struct {
	TopicID   uuid.UUID
	JobTitles []string
	UserIDs   []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ChangeInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if len(i.JobTitles) == 0 && len(i.UserIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one job title or user required"})
	}
	for _, title := range i.JobTitles {
		if strings.TrimSpace(title) == "" {
			errs = append(errs, domain.FieldError{Field: "job_titles", Message: "titles must be non-empty"})
			break
		}
	}
	for _, title := range i.JobTitles {
		if title == domain.JobTitleAdmin {
			errs = append(errs, domain.FieldError{Field: "job_titles", Message: "Admin is not assignable"})
			break
		}
	}
	for _, id := range i.UserIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "user_ids", Message: "ids must be non-nil"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
