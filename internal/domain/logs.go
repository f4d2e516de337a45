package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentLog is one append-only record of an assign/unassign action on a
// topic. Entries are written only for membership changes that actually took
// effect; repeated no-op calls never log. The topic reference is weak:
// deleting a topic does not remove its history.
type AssignmentLog struct {
	ID          uuid.UUID
	TopicID     uuid.UUID
	Action      AssignmentAction
	EntityType  AssignmentEntity
	EntityValue string // job title name or user id, depending on EntityType
	ChangedBy   string // acting admin's display name, resolved server-side
	CreatedAt   time.Time
}

// ContentChange captures a content field transition.
type ContentChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// QuizChange captures a quiz field transition.
type QuizChange struct {
	From []QuizItem `json:"from"`
	To   []QuizItem `json:"to"`
}

// UpdatedFields holds the field-level diff recorded in a content change log
// entry. A field is present only when it actually changed; topic creation
// records both with empty From values.
type UpdatedFields struct {
	Content *ContentChange `json:"content,omitempty"`
	Quiz    *QuizChange    `json:"quiz,omitempty"`
}

// IsEmpty reports whether no field changed.
func (u UpdatedFields) IsEmpty() bool {
	return u.Content == nil && u.Quiz == nil
}

// ContentChangeLog is one append-only record of a content/quiz update,
// with a title snapshot taken at write time.
type ContentChangeLog struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	Title     string
	Updated   UpdatedFields
	UpdatedBy string
	CreatedAt time.Time
}

// TopicLogGroup is the per-topic grouped view of assignment history,
// split by target kind.
type TopicLogGroup struct {
	Title        string           `json:"title"`
	JobTitleLogs []GroupedLogItem `json:"jobTitleLogs"`
	UserLogs     []GroupedLogItem `json:"userLogs"`
}

// GroupedLogItem is a single assignment log entry projected for the grouped
// views. Exactly one of JobTitle/UserID is set, matching the entry's kind.
type GroupedLogItem struct {
	Action    AssignmentAction `json:"action"`
	JobTitle  string           `json:"jobTitle,omitempty"`
	UserID    string           `json:"userId,omitempty"`
	AdminName string           `json:"adminName"`
	Timestamp time.Time        `json:"timestamp"`
}
