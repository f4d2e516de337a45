package domain

// AssignmentAction is the kind of membership change recorded in the assignment log.
type AssignmentAction string

const (
	AssignmentActionAssign   AssignmentAction = "assign"
	AssignmentActionUnassign AssignmentAction = "unassign"
)

func (a AssignmentAction) String() string { return string(a) }

func (a AssignmentAction) IsValid() bool {
	switch a {
	case AssignmentActionAssign, AssignmentActionUnassign:
		return true
	}
	return false
}

// AssignmentEntity identifies what kind of target an assignment log entry refers to.
type AssignmentEntity string

const (
	AssignmentEntityJobTitle AssignmentEntity = "jobTitle"
	AssignmentEntityUser     AssignmentEntity = "user"
)

func (e AssignmentEntity) String() string { return string(e) }

func (e AssignmentEntity) IsValid() bool {
	switch e {
	case AssignmentEntityJobTitle, AssignmentEntityUser:
		return true
	}
	return false
}

// JobTitleAll is the broadcast sentinel: a topic carrying it is visible to every user.
const JobTitleAll = "All"

// JobTitleAdmin is reserved and never stored in a user's job title set.
const JobTitleAdmin = "Admin"
