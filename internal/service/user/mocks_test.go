package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListFunc              func(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	CreateFunc            func(ctx context.Context, user *domain.User) (*domain.User, error)
	ApproveFunc           func(ctx context.Context, userID uuid.UUID, approvedBy string) (*domain.User, error)
	DeactivateFunc        func(ctx context.Context, userID uuid.UUID, deactivatedBy string) (*domain.User, error)
	ReactivateFunc        func(ctx context.Context, userID uuid.UUID, reactivatedBy string) (*domain.User, error)
	ResetPasswordFunc     func(ctx context.Context, userID uuid.UUID, passwordHash, resetBy string) (*domain.User, error)
	UpdateJobTitlesFunc   func(ctx context.Context, userID uuid.UUID, jobTitles []string) (*domain.User, error)
	CreateJobTitleLogFunc func(ctx context.Context, log *domain.JobTitleLog) (*domain.JobTitleLog, error)
	ListJobTitleLogsFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.JobTitleLog, error)

	calls struct {
		Approve []struct {
			UserID     uuid.UUID
			ApprovedBy string
		}
		ResetPassword []struct {
			UserID       uuid.UUID
			PasswordHash string
			ResetBy      string
		}
		CreateJobTitleLog []struct{ Log *domain.JobTitleLog }
	}
	lock sync.RWMutex
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

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) Approve(ctx context.Context, userID uuid.UUID, approvedBy string) (*domain.User, error) {
	if mock.ApproveFunc == nil {
		panic("userRepoMock.ApproveFunc: method is nil but userRepo.Approve was just called")
	}
	mock.lock.Lock()
	mock.calls.Approve = append(mock.calls.Approve, struct {
		UserID     uuid.UUID
		ApprovedBy string
	}{userID, approvedBy})
	mock.lock.Unlock()
	return mock.ApproveFunc(ctx, userID, approvedBy)
}

func (mock *userRepoMock) ApproveCalls() []struct {
	UserID     uuid.UUID
	ApprovedBy string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Approve
}

func (mock *userRepoMock) Deactivate(ctx context.Context, userID uuid.UUID, deactivatedBy string) (*domain.User, error) {
	if mock.DeactivateFunc == nil {
		panic("userRepoMock.DeactivateFunc: method is nil but userRepo.Deactivate was just called")
	}
	return mock.DeactivateFunc(ctx, userID, deactivatedBy)
}

func (mock *userRepoMock) Reactivate(ctx context.Context, userID uuid.UUID, reactivatedBy string) (*domain.User, error) {
	if mock.ReactivateFunc == nil {
		panic("userRepoMock.ReactivateFunc: method is nil but userRepo.Reactivate was just called")
	}
	return mock.ReactivateFunc(ctx, userID, reactivatedBy)
}

func (mock *userRepoMock) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, resetBy string) (*domain.User, error) {
	if mock.ResetPasswordFunc == nil {
		panic("userRepoMock.ResetPasswordFunc: method is nil but userRepo.ResetPassword was just called")
	}
	mock.lock.Lock()
	mock.calls.ResetPassword = append(mock.calls.ResetPassword, struct {
		UserID       uuid.UUID
		PasswordHash string
		ResetBy      string
	}{userID, passwordHash, resetBy})
	mock.lock.Unlock()
	return mock.ResetPasswordFunc(ctx, userID, passwordHash, resetBy)
}

func (mock *userRepoMock) ResetPasswordCalls() []struct {
	UserID       uuid.UUID
	PasswordHash string
	ResetBy      string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ResetPassword
}

func (mock *userRepoMock) UpdateJobTitles(ctx context.Context, userID uuid.UUID, jobTitles []string) (*domain.User, error) {
	if mock.UpdateJobTitlesFunc == nil {
		panic("userRepoMock.UpdateJobTitlesFunc: method is nil but userRepo.UpdateJobTitles was just called")
	}
	return mock.UpdateJobTitlesFunc(ctx, userID, jobTitles)
}

func (mock *userRepoMock) CreateJobTitleLog(ctx context.Context, log *domain.JobTitleLog) (*domain.JobTitleLog, error) {
	if mock.CreateJobTitleLogFunc == nil {
		panic("userRepoMock.CreateJobTitleLogFunc: method is nil but userRepo.CreateJobTitleLog was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateJobTitleLog = append(mock.calls.CreateJobTitleLog, struct{ Log *domain.JobTitleLog }{log})
	mock.lock.Unlock()
	return mock.CreateJobTitleLogFunc(ctx, log)
}

func (mock *userRepoMock) CreateJobTitleLogCalls() []struct{ Log *domain.JobTitleLog } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateJobTitleLog
}

func (mock *userRepoMock) ListJobTitleLogs(ctx context.Context, userID uuid.UUID) ([]domain.JobTitleLog, error) {
	if mock.ListJobTitleLogsFunc == nil {
		panic("userRepoMock.ListJobTitleLogsFunc: method is nil but userRepo.ListJobTitleLogs was just called")
	}
	return mock.ListJobTitleLogsFunc(ctx, userID)
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
