package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

var _ contentLogRepo = &contentLogRepoMock{}

type contentLogRepoMock struct {
	CreateFunc func(ctx context.Context, log *domain.ContentChangeLog) (*domain.ContentChangeLog, error)

	calls struct {
		Create []struct{ Log *domain.ContentChangeLog }
	}
	lock sync.RWMutex
}

func (mock *contentLogRepoMock) Create(ctx context.Context, log *domain.ContentChangeLog) (*domain.ContentChangeLog, error) {
	if mock.CreateFunc == nil {
		panic("contentLogRepoMock.CreateFunc: method is nil but contentLogRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Log *domain.ContentChangeLog }{log})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *contentLogRepoMock) CreateCalls() []struct{ Log *domain.ContentChangeLog } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
