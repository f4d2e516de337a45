// Package auth implements registration, mobile+password login and password
// changes. Token verification lives in internal/auth; this package only
// issues tokens through it.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/config"
	"github.com/opsacademy/training-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string, mustChange bool) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, isAdmin bool) (string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}
