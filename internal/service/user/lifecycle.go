package user

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// Approve marks a pending account as approved by the acting admin.
// Returns ErrConflict if the account is already approved. Admin only.
func (s *Service) Approve(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if target.IsApproved() {
		return nil, fmt.Errorf("user already approved: %w", domain.ErrConflict)
	}

	approved, err := s.users.Approve(ctx, userID, admin.Name)
	if err != nil {
		return nil, fmt.Errorf("approve user: %w", err)
	}

	s.log.InfoContext(ctx, "user approved",
		slog.String("user_id", userID.String()),
		slog.String("approved_by", admin.Name))

	return approved, nil
}

// Deactivate disables an active account. Accounts that predate the approval
// flow get their approval audit fields backfilled with the same actor, so a
// deactivated account is never in the "pending" state. Admin only.
func (s *Service) Deactivate(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if userID == admin.ID {
		return nil, domain.NewValidationError("user_id", "cannot deactivate your own account")
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !target.Active {
		return nil, fmt.Errorf("user already deactivated: %w", domain.ErrConflict)
	}

	var deactivated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if !target.IsApproved() {
			if _, err := s.users.Approve(txCtx, userID, admin.Name); err != nil {
				return fmt.Errorf("backfill approval: %w", err)
			}
		}

		var txErr error
		deactivated, txErr = s.users.Deactivate(txCtx, userID, admin.Name)
		if txErr != nil {
			return fmt.Errorf("deactivate user: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user deactivated",
		slog.String("user_id", userID.String()),
		slog.String("deactivated_by", admin.Name))

	return deactivated, nil
}

// Reactivate re-enables a deactivated account. The caller must present the
// configured reactivation code; a wrong code is Forbidden, not a validation
// error, so callers cannot tell a near-miss from garbage. Admin only.
func (s *Service) Reactivate(ctx context.Context, userID uuid.UUID, code string) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(s.cfg.ReactivationCode)) != 1 {
		return nil, domain.ErrForbidden
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if target.Active {
		return nil, fmt.Errorf("user is not deactivated: %w", domain.ErrConflict)
	}

	reactivated, err := s.users.Reactivate(ctx, userID, admin.Name)
	if err != nil {
		return nil, fmt.Errorf("reactivate user: %w", err)
	}

	s.log.InfoContext(ctx, "user reactivated",
		slog.String("user_id", userID.String()),
		slog.String("reactivated_by", admin.Name))

	return reactivated, nil
}
