package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

// ChangePassword replaces the caller's password and clears the
// must-change flag. The new password must differ from the configured
// default, otherwise a reset account could "change" its way back into the
// state a reset is meant to end.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}
	if input.NewPassword == s.cfg.DefaultPassword {
		return domain.NewValidationError("new_password", "must differ from the default password")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	if _, err := s.users.UpdatePassword(ctx, userID, string(hash), false); err != nil {
		return fmt.Errorf("auth.ChangePassword update password: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", userID.String()))

	return nil
}
