package assignment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc        func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListUnassignedFunc func(ctx context.Context) ([]domain.Topic, error)
	AddJobTitleFunc    func(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error)
	RemoveJobTitleFunc func(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error)
	AddAssigneeFunc    func(ctx context.Context, topicID, userID uuid.UUID) (bool, error)
	RemoveAssigneeFunc func(ctx context.Context, topicID, userID uuid.UUID) (bool, error)

	calls struct {
		AddJobTitle []struct {
			TopicID  uuid.UUID
			JobTitle string
		}
		RemoveJobTitle []struct {
			TopicID  uuid.UUID
			JobTitle string
		}
		AddAssignee []struct {
			TopicID uuid.UUID
			UserID  uuid.UUID
		}
		RemoveAssignee []struct {
			TopicID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicRepoMock) ListUnassigned(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListUnassignedFunc == nil {
		panic("topicRepoMock.ListUnassignedFunc: method is nil but topicRepo.ListUnassigned was just called")
	}
	return mock.ListUnassignedFunc(ctx)
}

func (mock *topicRepoMock) AddJobTitle(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error) {
	if mock.AddJobTitleFunc == nil {
		panic("topicRepoMock.AddJobTitleFunc: method is nil but topicRepo.AddJobTitle was just called")
	}
	mock.lock.Lock()
	mock.calls.AddJobTitle = append(mock.calls.AddJobTitle, struct {
		TopicID  uuid.UUID
		JobTitle string
	}{topicID, jobTitle})
	mock.lock.Unlock()
	return mock.AddJobTitleFunc(ctx, topicID, jobTitle)
}

func (mock *topicRepoMock) AddJobTitleCalls() []struct {
	TopicID  uuid.UUID
	JobTitle string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AddJobTitle
}

func (mock *topicRepoMock) RemoveJobTitle(ctx context.Context, topicID uuid.UUID, jobTitle string) (bool, error) {
	if mock.RemoveJobTitleFunc == nil {
		panic("topicRepoMock.RemoveJobTitleFunc: method is nil but topicRepo.RemoveJobTitle was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveJobTitle = append(mock.calls.RemoveJobTitle, struct {
		TopicID  uuid.UUID
		JobTitle string
	}{topicID, jobTitle})
	mock.lock.Unlock()
	return mock.RemoveJobTitleFunc(ctx, topicID, jobTitle)
}

func (mock *topicRepoMock) AddAssignee(ctx context.Context, topicID, userID uuid.UUID) (bool, error) {
	if mock.AddAssigneeFunc == nil {
		panic("topicRepoMock.AddAssigneeFunc: method is nil but topicRepo.AddAssignee was just called")
	}
	mock.lock.Lock()
	mock.calls.AddAssignee = append(mock.calls.AddAssignee, struct {
		TopicID uuid.UUID
		UserID  uuid.UUID
	}{topicID, userID})
	mock.lock.Unlock()
	return mock.AddAssigneeFunc(ctx, topicID, userID)
}

func (mock *topicRepoMock) RemoveAssignee(ctx context.Context, topicID, userID uuid.UUID) (bool, error) {
	if mock.RemoveAssigneeFunc == nil {
		panic("topicRepoMock.RemoveAssigneeFunc: method is nil but topicRepo.RemoveAssignee was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveAssignee = append(mock.calls.RemoveAssignee, struct {
		TopicID uuid.UUID
		UserID  uuid.UUID
	}{topicID, userID})
	mock.lock.Unlock()
	return mock.RemoveAssigneeFunc(ctx, topicID, userID)
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

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc         func(ctx context.Context, log *domain.AssignmentLog) (*domain.AssignmentLog, error)
	ListByTopicFunc    func(ctx context.Context, topicID uuid.UUID) ([]domain.AssignmentLog, error)
	ListByTopicIDsFunc func(ctx context.Context, topicIDs []uuid.UUID) ([]domain.AssignmentLog, error)

	calls struct {
		Create []struct{ Log *domain.AssignmentLog }
	}
	lock sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, log *domain.AssignmentLog) (*domain.AssignmentLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Log *domain.AssignmentLog }{log})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *logRepoMock) CreateCalls() []struct{ Log *domain.AssignmentLog } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *logRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.AssignmentLog, error) {
	if mock.ListByTopicFunc == nil {
		panic("logRepoMock.ListByTopicFunc: method is nil but logRepo.ListByTopic was just called")
	}
	return mock.ListByTopicFunc(ctx, topicID)
}

func (mock *logRepoMock) ListByTopicIDs(ctx context.Context, topicIDs []uuid.UUID) ([]domain.AssignmentLog, error) {
	if mock.ListByTopicIDsFunc == nil {
		panic("logRepoMock.ListByTopicIDsFunc: method is nil but logRepo.ListByTopicIDs was just called")
	}
	return mock.ListByTopicIDsFunc(ctx, topicIDs)
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
