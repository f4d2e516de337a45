package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User represents an application user identified by mobile number.
// Admins additionally carry IsAdmin; "Admin" itself is never stored
// in JobTitles.
type User struct {
	ID                 uuid.UUID
	Name               string
	Mobile             string
	PasswordHash       string
	JobTitles          []string
	IsAdmin            bool
	MustChangePassword bool
	Active             bool

	ApprovedBy      *string
	ApprovedAt      *time.Time
	DeactivatedBy   *string
	DeactivatedAt   *time.Time
	ReactivatedBy   *string
	ReactivatedAt   *time.Time
	PasswordResetBy *string
	PasswordResetAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApproved reports whether an admin has approved the user.
func (u *User) IsApproved() bool {
	return u.ApprovedBy != nil
}

// HasJobTitle reports whether the user's job title set contains title.
func (u *User) HasJobTitle(title string) bool {
	return slices.Contains(u.JobTitles, title)
}

// UserFilter narrows user listings. Nil fields mean "no filter".
type UserFilter struct {
	Active   *bool
	Approved *bool
}

// JobTitleLog is an append-only record of a job title change: the actor and
// the resulting job title set. It references the user by id rather than
// being embedded, so user documents do not grow without bound.
type JobTitleLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ChangedBy string
	JobTitles []string
	CreatedAt time.Time
}
