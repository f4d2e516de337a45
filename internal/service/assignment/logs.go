package assignment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// TopicLogs returns a topic's assignment history grouped by target kind,
// newest first within each group. Admin only.
func (s *Service) TopicLogs(ctx context.Context, topicID uuid.UUID) (*domain.TopicLogGroup, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	logs, err := s.logs.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list assignment logs: %w", err)
	}

	group := groupLogs(topic.Title, logs)
	return &group, nil
}

// UnassignedLogs returns the grouped assignment history of every currently
// unassigned topic, keyed by topic id. A topic whose history is empty (never
// assigned) maps to empty groups. Admin only.
func (s *Service) UnassignedLogs(ctx context.Context) (map[uuid.UUID]domain.TopicLogGroup, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	topics, err := s.topics.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unassigned topics: %w", err)
	}

	ids := make([]uuid.UUID, len(topics))
	for i, topic := range topics {
		ids[i] = topic.ID
	}

	logs, err := s.logs.ListByTopicIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list assignment logs: %w", err)
	}

	byTopic := make(map[uuid.UUID][]domain.AssignmentLog, len(topics))
	for _, log := range logs {
		byTopic[log.TopicID] = append(byTopic[log.TopicID], log)
	}

	result := make(map[uuid.UUID]domain.TopicLogGroup, len(topics))
	for _, topic := range topics {
		result[topic.ID] = groupLogs(topic.Title, byTopic[topic.ID])
	}

	return result, nil
}

// groupLogs splits raw log entries into the job title and user views.
// Both slices are always non-nil.
func groupLogs(title string, logs []domain.AssignmentLog) domain.TopicLogGroup {
	group := domain.TopicLogGroup{
		Title:        title,
		JobTitleLogs: []domain.GroupedLogItem{},
		UserLogs:     []domain.GroupedLogItem{},
	}

	for _, log := range logs {
		item := domain.GroupedLogItem{
			Action:    log.Action,
			AdminName: log.ChangedBy,
			Timestamp: log.CreatedAt,
		}
		switch log.EntityType {
		case domain.AssignmentEntityJobTitle:
			item.JobTitle = log.EntityValue
			group.JobTitleLogs = append(group.JobTitleLogs, item)
		case domain.AssignmentEntityUser:
			item.UserID = log.EntityValue
			group.UserLogs = append(group.UserLogs, item)
		}
	}

	return group
}
