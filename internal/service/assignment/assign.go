package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// Assign grants topic visibility to job titles and/or individual users.
// Every effective change writes one audit entry; targets that were already
// assigned are skipped silently. All changes and their log entries commit
// in one transaction. Admin only.
func (s *Service) Assign(ctx context.Context, input ChangeInput) (*Result, error) {
	return s.change(ctx, input, domain.AssignmentActionAssign)
}

// Unassign revokes topic visibility from job titles and/or individual users.
// Symmetric to Assign: only effective removals are logged.
func (s *Service) Unassign(ctx context.Context, input ChangeInput) (*Result, error) {
	return s.change(ctx, input, domain.AssignmentActionUnassign)
}

func (s *Service) change(ctx context.Context, input ChangeInput, action domain.AssignmentAction) (*Result, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Verify all target users exist before mutating anything.
	for _, userID := range input.UserIDs {
		if _, err := s.users.GetByID(ctx, userID); err != nil {
			return nil, fmt.Errorf("target user %s: %w", userID, err)
		}
	}

	result := &Result{Requested: len(input.JobTitles) + len(input.UserIDs)}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, title := range input.JobTitles {
			title = strings.TrimSpace(title)

			changed, err := s.mutateJobTitle(txCtx, input, action, title)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}

			if _, err := s.logs.Create(txCtx, &domain.AssignmentLog{
				TopicID:     input.TopicID,
				Action:      action,
				EntityType:  domain.AssignmentEntityJobTitle,
				EntityValue: title,
				ChangedBy:   admin.Name,
			}); err != nil {
				return fmt.Errorf("assignment log: %w", err)
			}
			result.Changed++
		}

		for _, userID := range input.UserIDs {
			changed, err := s.mutateAssignee(txCtx, input, action, userID)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}

			if _, err := s.logs.Create(txCtx, &domain.AssignmentLog{
				TopicID:     input.TopicID,
				Action:      action,
				EntityType:  domain.AssignmentEntityUser,
				EntityValue: userID.String(),
				ChangedBy:   admin.Name,
			}); err != nil {
				return fmt.Errorf("assignment log: %w", err)
			}
			result.Changed++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "assignment changed",
		slog.String("topic_id", input.TopicID.String()),
		slog.String("action", action.String()),
		slog.Int("requested", result.Requested),
		slog.Int("changed", result.Changed),
		slog.String("changed_by", admin.Name),
	)

	return result, nil
}

func (s *Service) mutateJobTitle(ctx context.Context, input ChangeInput, action domain.AssignmentAction, title string) (bool, error) {
	switch action {
	case domain.AssignmentActionAssign:
		changed, err := s.topics.AddJobTitle(ctx, input.TopicID, title)
		if err != nil {
			return false, fmt.Errorf("add job title %q: %w", title, err)
		}
		return changed, nil
	default:
		changed, err := s.topics.RemoveJobTitle(ctx, input.TopicID, title)
		if err != nil {
			return false, fmt.Errorf("remove job title %q: %w", title, err)
		}
		return changed, nil
	}
}

func (s *Service) mutateAssignee(ctx context.Context, input ChangeInput, action domain.AssignmentAction, userID uuid.UUID) (bool, error) {
	switch action {
	case domain.AssignmentActionAssign:
		changed, err := s.topics.AddAssignee(ctx, input.TopicID, userID)
		if err != nil {
			return false, fmt.Errorf("add assignee %s: %w", userID, err)
		}
		return changed, nil
	default:
		changed, err := s.topics.RemoveAssignee(ctx, input.TopicID, userID)
		if err != nil {
			return false, fmt.Errorf("remove assignee %s: %w", userID, err)
		}
		return changed, nil
	}
}
