package topic

import (
	"context"
	"fmt"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

// ListTopics returns every topic, newest first. Admin only.
func (s *Service) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// VisibleTopics returns the topics the current user may see: matched by job
// title, assigned directly, or broadcast via "All". Admins see every topic
// that has any assignment at all; fully unassigned topics stay in the
// unassigned view.
func (s *Service) VisibleTopics(ctx context.Context) ([]domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if ctxutil.IsAdminCtx(ctx) {
		topics, err := s.topics.ListAnyAssigned(ctx)
		if err != nil {
			return nil, fmt.Errorf("list assigned topics: %w", err)
		}
		return topics, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	topics, err := s.topics.ListVisibleTo(ctx, user.ID, user.JobTitles)
	if err != nil {
		return nil, fmt.Errorf("list visible topics: %w", err)
	}

	return topics, nil
}

// AssignedTopics returns the assignment view. For admins that is every
// topic carrying at least one job title or direct assignee, the complement
// of UnassignedTopics. For regular users it is the topics assigned to them
// directly, excluding topics visible only through a job title.
func (s *Service) AssignedTopics(ctx context.Context) ([]domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if ctxutil.IsAdminCtx(ctx) {
		topics, err := s.topics.ListAnyAssigned(ctx)
		if err != nil {
			return nil, fmt.Errorf("list assigned topics: %w", err)
		}
		return topics, nil
	}

	topics, err := s.topics.ListAssignedTo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list assigned topics: %w", err)
	}

	return topics, nil
}

// UnassignedTopics returns topics with no job titles and no direct
// assignees, newest first. Admin only.
func (s *Service) UnassignedTopics(ctx context.Context) ([]domain.Topic, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	topics, err := s.topics.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unassigned topics: %w", err)
	}

	return topics, nil
}
