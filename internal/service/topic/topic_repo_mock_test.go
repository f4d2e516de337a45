package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc          func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByIDFunc         func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetByTitleFunc      func(ctx context.Context, title string) (*domain.Topic, error)
	UpdateFunc          func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	DeleteFunc          func(ctx context.Context, topicID uuid.UUID) error
	ListFunc            func(ctx context.Context) ([]domain.Topic, error)
	ListVisibleToFunc   func(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error)
	ListAssignedToFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error)
	ListAnyAssignedFunc func(ctx context.Context) ([]domain.Topic, error)
	ListUnassignedFunc  func(ctx context.Context) ([]domain.Topic, error)

	calls struct {
		Create        []struct{ Topic *domain.Topic }
		GetByID       []struct{ TopicID uuid.UUID }
		Update        []struct{ Topic *domain.Topic }
		Delete        []struct{ TopicID uuid.UUID }
		List          []struct{}
		ListVisibleTo []struct {
			UserID    uuid.UUID
			JobTitles []string
		}
		ListAssignedTo  []struct{ UserID uuid.UUID }
		ListAnyAssigned []struct{}
		ListUnassigned  []struct{}
	}
	lock sync.RWMutex
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

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ TopicID uuid.UUID }{topicID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetByTitle(ctx context.Context, title string) (*domain.Topic, error) {
	if mock.GetByTitleFunc == nil {
		panic("topicRepoMock.GetByTitleFunc: method is nil but topicRepo.GetByTitle was just called")
	}
	return mock.GetByTitleFunc(ctx, title)
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

func (mock *topicRepoMock) Delete(ctx context.Context, topicID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ TopicID uuid.UUID }{topicID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, topicID)
}

func (mock *topicRepoMock) DeleteCalls() []struct{ TopicID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *topicRepoMock) List(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *topicRepoMock) ListVisibleTo(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error) {
	if mock.ListVisibleToFunc == nil {
		panic("topicRepoMock.ListVisibleToFunc: method is nil but topicRepo.ListVisibleTo was just called")
	}
	mock.lock.Lock()
	mock.calls.ListVisibleTo = append(mock.calls.ListVisibleTo, struct {
		UserID    uuid.UUID
		JobTitles []string
	}{userID, jobTitles})
	mock.lock.Unlock()
	return mock.ListVisibleToFunc(ctx, userID, jobTitles)
}

func (mock *topicRepoMock) ListAssignedTo(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error) {
	if mock.ListAssignedToFunc == nil {
		panic("topicRepoMock.ListAssignedToFunc: method is nil but topicRepo.ListAssignedTo was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAssignedTo = append(mock.calls.ListAssignedTo, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListAssignedToFunc(ctx, userID)
}

func (mock *topicRepoMock) ListAnyAssigned(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListAnyAssignedFunc == nil {
		panic("topicRepoMock.ListAnyAssignedFunc: method is nil but topicRepo.ListAnyAssigned was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAnyAssigned = append(mock.calls.ListAnyAssigned, struct{}{})
	mock.lock.Unlock()
	return mock.ListAnyAssignedFunc(ctx)
}

func (mock *topicRepoMock) ListAnyAssignedCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListAnyAssigned
}

func (mock *topicRepoMock) ListUnassigned(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListUnassignedFunc == nil {
		panic("topicRepoMock.ListUnassignedFunc: method is nil but topicRepo.ListUnassigned was just called")
	}
	mock.lock.Lock()
	mock.calls.ListUnassigned = append(mock.calls.ListUnassigned, struct{}{})
	mock.lock.Unlock()
	return mock.ListUnassignedFunc(ctx)
}
