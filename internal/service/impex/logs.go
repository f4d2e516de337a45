package impex

import (
	"context"
	"fmt"

	"github.com/opsacademy/training-backend/internal/domain"
)

// LogPage is one page of content change history, newest first.
type LogPage struct {
	Logs       []domain.ContentChangeLog `json:"logs"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	Total      int                       `json:"total"`
	TotalPages int                       `json:"totalPages"`
}

// ListContentChangeLogs returns a page of the content change history ordered
// by timestamp descending. Page defaults to 1 and limit to the configured
// page size when missing or non-positive. Admin only.
func (s *Service) ListContentChangeLogs(ctx context.Context, page, limit int) (*LogPage, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.cfg.DefaultPageSize
	}

	total, err := s.contentLogs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count content change logs: %w", err)
	}

	logs, err := s.contentLogs.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list content change logs: %w", err)
	}

	return &LogPage{
		Logs:       logs,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}
