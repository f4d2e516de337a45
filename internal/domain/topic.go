package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Topic is a unit of training content with its quiz and assignment sets.
// JobTitles and AssignedTo are sets for matching purposes; order is not
// significant and duplicates are never stored.
type Topic struct {
	ID         uuid.UUID
	Title      string
	Content    string
	ImageURL   *string
	Images     SectionImages
	Quiz       []QuizItem
	JobTitles  []string
	AssignedTo []uuid.UUID
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SectionImages holds optional per-section image URL lists.
type SectionImages struct {
	Objective []string `json:"objective,omitempty"`
	Process   []string `json:"process,omitempty"`
	Task      []string `json:"task,omitempty"`
	SelfCheck []string `json:"selfCheck,omitempty"`
}

// QuizItem is a single quiz question with exactly four ordered options.
// CorrectAnswer must equal one of the options; storage does not enforce this.
type QuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// IsUnassigned reports whether the topic has no assignment at all:
// both the job title set and the direct user set are empty.
func (t *Topic) IsUnassigned() bool {
	return len(t.JobTitles) == 0 && len(t.AssignedTo) == 0
}

// HasJobTitle reports whether the topic's job title set contains title.
func (t *Topic) HasJobTitle(title string) bool {
	return slices.Contains(t.JobTitles, title)
}

// IsAssignedToUser reports whether the user is directly assigned.
func (t *Topic) IsAssignedToUser(userID uuid.UUID) bool {
	return slices.Contains(t.AssignedTo, userID)
}

// VisibleTo reports whether the topic is visible to the given user:
// job title intersection, direct assignment, or the "All" broadcast.
func (t *Topic) VisibleTo(u *User) bool {
	if t.HasJobTitle(JobTitleAll) {
		return true
	}
	if t.IsAssignedToUser(u.ID) {
		return true
	}
	for _, jt := range u.JobTitles {
		if t.HasJobTitle(jt) {
			return true
		}
	}
	return false
}

// QuizEqual compares two quizzes structurally: item order, option order,
// and every per-item field must match.
func QuizEqual(a, b []QuizItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Question != b[i].Question || a[i].CorrectAnswer != b[i].CorrectAnswer {
			return false
		}
		if !slices.Equal(a[i].Options, b[i].Options) {
			return false
		}
	}
	return true
}
