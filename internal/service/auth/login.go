package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/opsacademy/training-backend/internal/domain"
)

// Login authenticates a user with mobile + password.
// Returns ErrUnauthorized if the mobile is not found or the password is
// wrong, and ErrForbidden for accounts that are unapproved or deactivated.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Mobile = strings.TrimSpace(input.Mobile)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByMobile(ctx, input.Mobile)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Lifecycle checks come after the password so that probing with a wrong
	// password never reveals account state.
	if !user.IsApproved() {
		return nil, domain.ErrForbidden
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{
		AccessToken:        accessToken,
		User:               user,
		MustChangePassword: user.MustChangePassword,
	}, nil
}
