package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByMobileFunc    func(ctx context.Context, mobile string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID uuid.UUID, passwordHash string, mustChange bool) (*domain.User, error)

	calls struct {
		Create         []struct{ User *domain.User }
		UpdatePassword []struct {
			UserID       uuid.UUID
			PasswordHash string
			MustChange   bool
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	if mock.GetByMobileFunc == nil {
		panic("userRepoMock.GetByMobileFunc: method is nil but userRepo.GetByMobile was just called")
	}
	return mock.GetByMobileFunc(ctx, mobile)
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{user})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string, mustChange bool) (*domain.User, error) {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, struct {
		UserID       uuid.UUID
		PasswordHash string
		MustChange   bool
	}{userID, passwordHash, mustChange})
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, userID, passwordHash, mustChange)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	UserID       uuid.UUID
	PasswordHash string
	MustChange   bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePassword
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, isAdmin bool) (string, error)
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, isAdmin bool) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID, isAdmin)
}
