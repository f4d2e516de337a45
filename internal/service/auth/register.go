package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/opsacademy/training-backend/internal/domain"
)

// Register creates a new account pending admin approval. The account gets
// the configured default password and must change it on first login.
// A submitted "Admin" job title marks the account as admin and is stripped
// from the stored set; an admin registration must carry at least one real
// job title besides it. Returns ErrAlreadyExists if the mobile is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Name = strings.TrimSpace(input.Name)
	input.Mobile = strings.TrimSpace(input.Mobile)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	isAdmin := false
	jobTitles := []string{}
	for _, title := range input.JobTitles {
		title = strings.TrimSpace(title)
		if title == domain.JobTitleAdmin {
			isAdmin = true
			continue
		}
		jobTitles = append(jobTitles, title)
	}
	if isAdmin && len(jobTitles) == 0 {
		return nil, domain.NewValidationError("job_titles", "admin accounts need at least one job title besides Admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DefaultPassword), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:               input.Name,
		Mobile:             input.Mobile,
		PasswordHash:       string(hash),
		JobTitles:          jobTitles,
		IsAdmin:            isAdmin,
		MustChangePassword: true,
		Active:             true,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.Bool("is_admin", created.IsAdmin))

	return created, nil
}
