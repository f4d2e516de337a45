package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/pkg/ctxutil"
)

// TopicProgress pairs a topic with the caller's state on it. Topics never
// attempted carry zero attempts and no completion.
type TopicProgress struct {
	Topic     domain.Topic `json:"topic"`
	Completed bool         `json:"completed"`
	Attempts  int          `json:"attempts"`
}

// UserSummary is one row of the admin summary matrix: a user and their
// state on every topic.
type UserSummary struct {
	UserID    uuid.UUID     `json:"userId"`
	Name      string        `json:"name"`
	JobTitles []string      `json:"jobTitles"`
	Completed int           `json:"completed"`
	Items     []SummaryItem `json:"items"`
}

// SummaryItem is one cell of the summary matrix.
type SummaryItem struct {
	TopicID   uuid.UUID `json:"topicId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Attempts  int       `json:"attempts"`
}

// UserProgress returns the caller's progress over every topic visible to
// them. Visibility is evaluated at call time, so revoking an assignment
// also removes the topic from this view.
func (s *Service) UserProgress(ctx context.Context) ([]TopicProgress, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := s.visibleTopics(ctx, user)
	if err != nil {
		return nil, err
	}

	records, err := s.progress.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	byTopic := make(map[uuid.UUID]domain.Progress, len(records))
	for _, record := range records {
		byTopic[record.TopicID] = record
	}

	result := make([]TopicProgress, len(topics))
	for i, topic := range topics {
		record := byTopic[topic.ID]
		result[i] = TopicProgress{
			Topic:     topic,
			Completed: record.Completed,
			Attempts:  record.Attempts,
		}
	}

	return result, nil
}

// Summary returns the users-by-topics completion matrix over all active
// users and all topics. Admin only.
func (s *Service) Summary(ctx context.Context) ([]UserSummary, error) {
	caller, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !ctxutil.IsAdminCtx(ctx) || !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	active := true
	users, err := s.users.List(ctx, domain.UserFilter{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	records, err := s.progress.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	type cellKey struct{ userID, topicID uuid.UUID }
	cells := make(map[cellKey]domain.Progress, len(records))
	for _, record := range records {
		cells[cellKey{record.UserID, record.TopicID}] = record
	}

	summary := make([]UserSummary, len(users))
	for i, user := range users {
		row := UserSummary{
			UserID:    user.ID,
			Name:      user.Name,
			JobTitles: user.JobTitles,
			Items:     make([]SummaryItem, len(topics)),
		}
		for j, topic := range topics {
			record := cells[cellKey{user.ID, topic.ID}]
			row.Items[j] = SummaryItem{
				TopicID:   topic.ID,
				Title:     topic.Title,
				Completed: record.Completed,
				Attempts:  record.Attempts,
			}
			if record.Completed {
				row.Completed++
			}
		}
		summary[i] = row
	}

	return summary, nil
}

func (s *Service) visibleTopics(ctx context.Context, user *domain.User) ([]domain.Topic, error) {
	if user.IsAdmin {
		topics, err := s.topics.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list topics: %w", err)
		}
		return topics, nil
	}

	topics, err := s.topics.ListVisibleTo(ctx, user.ID, user.JobTitles)
	if err != nil {
		return nil, fmt.Errorf("list visible topics: %w", err)
	}
	return topics, nil
}
