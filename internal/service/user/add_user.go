package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/opsacademy/training-backend/internal/domain"
)

// AddUser creates an account on behalf of an admin. Unlike self
// registration it skips the approval queue: the account is approved by the
// acting admin in the same transaction. The default password applies and
// must be changed on first login. Admin only.
func (s *Service) AddUser(ctx context.Context, input AddUserInput) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DefaultPassword), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	jobTitles := make([]string, 0, len(input.JobTitles))
	for _, title := range input.JobTitles {
		jobTitles = append(jobTitles, strings.TrimSpace(title))
	}

	var approved *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, txErr := s.users.Create(txCtx, &domain.User{
			Name:               strings.TrimSpace(input.Name),
			Mobile:             strings.TrimSpace(input.Mobile),
			PasswordHash:       string(hash),
			JobTitles:          jobTitles,
			IsAdmin:            input.IsAdmin,
			MustChangePassword: true,
			Active:             true,
		})
		if txErr != nil {
			return fmt.Errorf("create user: %w", txErr)
		}

		approved, txErr = s.users.Approve(txCtx, created.ID, admin.Name)
		if txErr != nil {
			return fmt.Errorf("approve user: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user added",
		slog.String("user_id", approved.ID.String()),
		slog.Bool("is_admin", approved.IsAdmin),
		slog.String("added_by", admin.Name))

	return approved, nil
}
