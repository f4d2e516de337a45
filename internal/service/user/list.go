package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

// ListUsers returns users matching the filter, newest first. Admin only.
func (s *Service) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// PendingUsers returns accounts waiting for approval. Admin only.
func (s *Service) PendingUsers(ctx context.Context) ([]domain.User, error) {
	approved := false
	return s.ListUsers(ctx, domain.UserFilter{Approved: &approved})
}

// GetUser returns a single user. Admins can fetch anyone; other callers
// only themselves.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.requireSelfOrAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) requireSelfOrAdmin(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
