package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	RecordAttemptFunc func(ctx context.Context, userID, topicID uuid.UUID, passed bool) (*domain.Progress, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error)
	ListAllFunc       func(ctx context.Context) ([]domain.Progress, error)

	calls struct {
		RecordAttempt []struct {
			UserID  uuid.UUID
			TopicID uuid.UUID
			Passed  bool
		}
	}
	lock sync.RWMutex
}

func (mock *progressRepoMock) RecordAttempt(ctx context.Context, userID, topicID uuid.UUID, passed bool) (*domain.Progress, error) {
	if mock.RecordAttemptFunc == nil {
		panic("progressRepoMock.RecordAttemptFunc: method is nil but progressRepo.RecordAttempt was just called")
	}
	mock.lock.Lock()
	mock.calls.RecordAttempt = append(mock.calls.RecordAttempt, struct {
		UserID  uuid.UUID
		TopicID uuid.UUID
		Passed  bool
	}{userID, topicID, passed})
	mock.lock.Unlock()
	return mock.RecordAttemptFunc(ctx, userID, topicID, passed)
}

func (mock *progressRepoMock) RecordAttemptCalls() []struct {
	UserID  uuid.UUID
	TopicID uuid.UUID
	Passed  bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecordAttempt
}

func (mock *progressRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error) {
	if mock.ListByUserFunc == nil {
		panic("progressRepoMock.ListByUserFunc: method is nil but progressRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *progressRepoMock) ListAll(ctx context.Context) ([]domain.Progress, error) {
	if mock.ListAllFunc == nil {
		panic("progressRepoMock.ListAllFunc: method is nil but progressRepo.ListAll was just called")
	}
	return mock.ListAllFunc(ctx)
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc       func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListFunc          func(ctx context.Context) ([]domain.Topic, error)
	ListVisibleToFunc func(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error)
}

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicRepoMock) List(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *topicRepoMock) ListVisibleTo(ctx context.Context, userID uuid.UUID, jobTitles []string) ([]domain.Topic, error) {
	if mock.ListVisibleToFunc == nil {
		panic("topicRepoMock.ListVisibleToFunc: method is nil but topicRepo.ListVisibleTo was just called")
	}
	return mock.ListVisibleToFunc(ctx, userID, jobTitles)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListFunc    func(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	return mock.ListFunc(ctx, filter)
}
