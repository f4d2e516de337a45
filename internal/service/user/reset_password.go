package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsacademy/training-backend/internal/domain"
)

// ResetPassword sets a user's password back to the configured default and
// forces a change on next login. The reset actor and time are recorded on
// the account. Admin only.
func (s *Service) ResetPassword(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DefaultPassword), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	reset, err := s.users.ResetPassword(ctx, userID, string(hash), admin.Name)
	if err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}

	s.log.InfoContext(ctx, "password reset",
		slog.String("user_id", userID.String()),
		slog.String("reset_by", admin.Name))

	return reset, nil
}
