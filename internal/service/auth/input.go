package auth

import (
	"strings"
	"unicode"

	"github.com/opsacademy/training-backend/internal/domain"
)

// RegisterInput holds parameters for the register operation. The password is
// not part of the input: new accounts start with the configured default
// password and must change it on first login.
type RegisterInput struct {
	Name      string
	Mobile    string
	JobTitles []string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	errs = append(errs, validateMobile(i.Mobile)...)

	for _, title := range i.JobTitles {
		if strings.TrimSpace(title) == "" {
			errs = append(errs, domain.FieldError{Field: "job_titles", Message: "titles must not be blank"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Mobile   string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Mobile) == "" {
		errs = append(errs, domain.FieldError{Field: "mobile", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the change password operation.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// Validate validates the change password input. The default-password check
// happens in the service, where the configured value is known.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "old_password", Message: "required"})
	}
	if len(i.NewPassword) < 8 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "min 8 characters"})
	} else if len(i.NewPassword) > 72 {
		// bcrypt input limit
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "max 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
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
