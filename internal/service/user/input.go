package user

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// AddUserInput holds parameters for direct account creation by an admin.
// The account gets the configured default password and is approved by the
// acting admin immediately.
type AddUserInput struct {
	Name      string
	Mobile    string
	JobTitles []string
	IsAdmin   bool
}

// Validate checks all fields and collects all errors.
func (i AddUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	errs = append(errs, validateMobile(i.Mobile)...)
	errs = append(errs, validateJobTitles(i.JobTitles)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeJobTitlesInput holds parameters for replacing a user's job title set.
type ChangeJobTitlesInput struct {
	UserID    uuid.UUID
	JobTitles []string
}

// Validate checks all fields and collects all errors.
func (i ChangeJobTitlesInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	errs = append(errs, validateJobTitles(i.JobTitles)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateJobTitles rejects blank titles and the two reserved names:
// "Admin" lives in the IsAdmin flag and "All" is the topic broadcast
// sentinel, neither belongs in a user's set.
func validateJobTitles(titles []string) []domain.FieldError {
	var errs []domain.FieldError

	for _, title := range titles {
		switch strings.TrimSpace(title) {
		case "":
			errs = append(errs, domain.FieldError{Field: "job_titles", Message: "titles must not be blank"})
		case domain.JobTitleAdmin:
			errs = append(errs, domain.FieldError{Field: "job_titles", Message: `"Admin" is not a job title`})
		case domain.JobTitleAll:
			errs = append(errs, domain.FieldError{Field: "job_titles", Message: `"All" is reserved`})
		}
	}

	return errs
}

func validateMobile(mobile string) []domain.FieldError {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return []domain.FieldError{{Field: "mobile", Message: "required"}}
	}
	if len(mobile) < 10 || len(mobile) > 15 {
		return []domain.FieldError{{Field: "mobile", Message: "must be 10 to 15 digits"}}
	}
	for _, r := range mobile {
		if !unicode.IsDigit(r) {
			return []domain.FieldError{{Field: "mobile", Message: "digits only"}}
		}
	}
	return nil
}
