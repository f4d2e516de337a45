package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/internal/service/impex"
	"github.com/opsacademy/training-backend/internal/service/topic"
)

var _ topicService = &topicServiceMock{}

type topicServiceMock struct {
	CreateTopicFunc      func(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopicFunc         func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetTopicByTitleFunc  func(ctx context.Context, title string) (*domain.Topic, error)
	UpdateTopicFunc      func(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopicFunc      func(ctx context.Context, topicID uuid.UUID) error
	ListTopicsFunc       func(ctx context.Context) ([]domain.Topic, error)
	VisibleTopicsFunc    func(ctx context.Context) ([]domain.Topic, error)
	AssignedTopicsFunc   func(ctx context.Context) ([]domain.Topic, error)
	UnassignedTopicsFunc func(ctx context.Context) ([]domain.Topic, error)

	calls struct {
		CreateTopic []struct{ Input topic.CreateTopicInput }
	}
	lock sync.RWMutex
}

func (mock *topicServiceMock) CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("topicServiceMock.CreateTopicFunc: method is nil but topicService.CreateTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, struct{ Input topic.CreateTopicInput }{input})
	mock.lock.Unlock()
	return mock.CreateTopicFunc(ctx, input)
}

func (mock *topicServiceMock) CreateTopicCalls() []struct{ Input topic.CreateTopicInput } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateTopic
}

func (mock *topicServiceMock) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("topicServiceMock.GetTopicFunc: method is nil but topicService.GetTopic was just called")
	}
	return mock.GetTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) GetTopicByTitle(ctx context.Context, title string) (*domain.Topic, error) {
	if mock.GetTopicByTitleFunc == nil {
		panic("topicServiceMock.GetTopicByTitleFunc: method is nil but topicService.GetTopicByTitle was just called")
	}
	return mock.GetTopicByTitleFunc(ctx, title)
}

func (mock *topicServiceMock) UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error) {
	if mock.UpdateTopicFunc == nil {
		panic("topicServiceMock.UpdateTopicFunc: method is nil but topicService.UpdateTopic was just called")
	}
	return mock.UpdateTopicFunc(ctx, input)
}

func (mock *topicServiceMock) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	if mock.DeleteTopicFunc == nil {
		panic("topicServiceMock.DeleteTopicFunc: method is nil but topicService.DeleteTopic was just called")
	}
	return mock.DeleteTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("topicServiceMock.ListTopicsFunc: method is nil but topicService.ListTopics was just called")
	}
	return mock.ListTopicsFunc(ctx)
}

func (mock *topicServiceMock) VisibleTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.VisibleTopicsFunc == nil {
		panic("topicServiceMock.VisibleTopicsFunc: method is nil but topicService.VisibleTopics was just called")
	}
	return mock.VisibleTopicsFunc(ctx)
}

func (mock *topicServiceMock) AssignedTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.AssignedTopicsFunc == nil {
		panic("topicServiceMock.AssignedTopicsFunc: method is nil but topicService.AssignedTopics was just called")
	}
	return mock.AssignedTopicsFunc(ctx)
}

func (mock *topicServiceMock) UnassignedTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.UnassignedTopicsFunc == nil {
		panic("topicServiceMock.UnassignedTopicsFunc: method is nil but topicService.UnassignedTopics was just called")
	}
	return mock.UnassignedTopicsFunc(ctx)
}

var _ impexService = &impexServiceMock{}

type impexServiceMock struct {
	ImportRowsFunc            func(ctx context.Context, rows []impex.Row) (*impex.ImportResult, error)
	ExportRowsFunc            func(ctx context.Context) ([]impex.Row, error)
	ListContentChangeLogsFunc func(ctx context.Context, page, limit int) (*impex.LogPage, error)

	calls struct {
		ImportRows []struct{ Rows []impex.Row }
		ListContentChangeLogs []struct {
			Page  int
			Limit int
		}
	}
	lock sync.RWMutex
}

func (mock *impexServiceMock) ImportRows(ctx context.Context, rows []impex.Row) (*impex.ImportResult, error) {
	if mock.ImportRowsFunc == nil {
		panic("impexServiceMock.ImportRowsFunc: method is nil but impexService.ImportRows was just called")
	}
	mock.lock.Lock()
	mock.calls.ImportRows = append(mock.calls.ImportRows, struct{ Rows []impex.Row }{rows})
	mock.lock.Unlock()
	return mock.ImportRowsFunc(ctx, rows)
}

func (mock *impexServiceMock) ImportRowsCalls() []struct{ Rows []impex.Row } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ImportRows
}

func (mock *impexServiceMock) ExportRows(ctx context.Context) ([]impex.Row, error) {
	if mock.ExportRowsFunc == nil {
		panic("impexServiceMock.ExportRowsFunc: method is nil but impexService.ExportRows was just called")
	}
	return mock.ExportRowsFunc(ctx)
}

func (mock *impexServiceMock) ListContentChangeLogs(ctx context.Context, page, limit int) (*impex.LogPage, error) {
	if mock.ListContentChangeLogsFunc == nil {
		panic("impexServiceMock.ListContentChangeLogsFunc: method is nil but impexService.ListContentChangeLogs was just called")
	}
	mock.lock.Lock()
	mock.calls.ListContentChangeLogs = append(mock.calls.ListContentChangeLogs, struct {
		Page  int
		Limit int
	}{page, limit})
	mock.lock.Unlock()
	return mock.ListContentChangeLogsFunc(ctx, page, limit)
}

func (mock *impexServiceMock) ListContentChangeLogsCalls() []struct {
	Page  int
	Limit int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListContentChangeLogs
}
