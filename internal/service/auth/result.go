package auth

import "github.com/opsacademy/training-backend/internal/domain"

// AuthResult is returned by the Login operation.
type AuthResult struct {
	AccessToken        string
	User               *domain.User
	MustChangePassword bool
}
