package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// ChangeJobTitles replaces a user's job title set and appends a job title
// log entry recording the actor and the resulting set. Both writes commit
// in one transaction. Admin only.
func (s *Service) ChangeJobTitles(ctx context.Context, input ChangeJobTitlesInput) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	jobTitles := make([]string, 0, len(input.JobTitles))
	for _, title := range input.JobTitles {
		jobTitles = append(jobTitles, strings.TrimSpace(title))
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.users.UpdateJobTitles(txCtx, input.UserID, jobTitles)
		if txErr != nil {
			return fmt.Errorf("update job titles: %w", txErr)
		}

		if _, txErr = s.users.CreateJobTitleLog(txCtx, &domain.JobTitleLog{
			UserID:    input.UserID,
			ChangedBy: admin.Name,
			JobTitles: updated.JobTitles,
		}); txErr != nil {
			return fmt.Errorf("job title log: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job titles changed",
		slog.String("user_id", input.UserID.String()),
		slog.Int("titles", len(jobTitles)),
		slog.String("changed_by", admin.Name))

	return updated, nil
}

// JobTitleLogs returns a user's job title change history, newest first.
// Admin only.
func (s *Service) JobTitleLogs(ctx context.Context, userID uuid.UUID) ([]domain.JobTitleLog, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	logs, err := s.users.ListJobTitleLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list job title logs: %w", err)
	}

	return logs, nil
}
