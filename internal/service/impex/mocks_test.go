package impex

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByTitleFunc func(ctx context.Context, title string) (*domain.Topic, error)
	CreateFunc     func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	UpdateFunc     func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	ListFunc       func(ctx context.Context) ([]domain.Topic, error)

	calls struct {
		Create []struct{ Topic *domain.Topic }
		Update []struct{ Topic *domain.Topic }
	}
	lock sync.RWMutex
}

func (mock *topicRepoMock) GetByTitle(ctx context.Context, title string) (*domain.Topic, error) {
	if mock.GetByTitleFunc == nil {
		panic("topicRepoMock.GetByTitleFunc: method is nil but topicRepo.GetByTitle was just called")
	}
	return mock.GetByTitleFunc(ctx, title)
}

func (mock *topicRepoMock) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Topic *domain.Topic }{topic})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, topic)
}

func (mock *topicRepoMock) CreateCalls() []struct{ Topic *domain.Topic } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *topicRepoMock) Update(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Topic *domain.Topic }{topic})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, topic)
}

func (mock *topicRepoMock) UpdateCalls() []struct{ Topic *domain.Topic } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *topicRepoMock) List(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

var _ contentLogRepo = &contentLogRepoMock{}

type contentLogRepoMock struct {
	CreateBatchFunc func(ctx context.Context, logs []domain.ContentChangeLog) error
	ListFunc        func(ctx context.Context, limit, offset int) ([]domain.ContentChangeLog, error)
	CountFunc       func(ctx context.Context) (int, error)

	calls struct {
		CreateBatch []struct{ Logs []domain.ContentChangeLog }
		List        []struct{ Limit, Offset int }
	}
	lock sync.RWMutex
}

func (mock *contentLogRepoMock) CreateBatch(ctx context.Context, logs []domain.ContentChangeLog) error {
	if mock.CreateBatchFunc == nil {
		panic("contentLogRepoMock.CreateBatchFunc: method is nil but contentLogRepo.CreateBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, struct{ Logs []domain.ContentChangeLog }{logs})
	mock.lock.Unlock()
	return mock.CreateBatchFunc(ctx, logs)
}

func (mock *contentLogRepoMock) CreateBatchCalls() []struct{ Logs []domain.ContentChangeLog } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateBatch
}

func (mock *contentLogRepoMock) List(ctx context.Context, limit, offset int) ([]domain.ContentChangeLog, error) {
	if mock.ListFunc == nil {
		panic("contentLogRepoMock.ListFunc: method is nil but contentLogRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Limit, Offset int }{limit, offset})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *contentLogRepoMock) ListCalls() []struct{ Limit, Offset int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *contentLogRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("contentLogRepoMock.CountFunc: method is nil but contentLogRepo.Count was just called")
	}
	return mock.CountFunc(ctx)
}
