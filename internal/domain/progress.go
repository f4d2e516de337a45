package domain

import (
	"time"

	"github.com/google/uuid"
)

// Progress tracks a user's quiz attempts for one topic. Completed is a latch:
// once a quiz is passed it stays true regardless of later attempts.
type Progress struct {
	UserID    uuid.UUID
	TopicID   uuid.UUID
	Completed bool
	Attempts  int
	UpdatedAt time.Time
}
