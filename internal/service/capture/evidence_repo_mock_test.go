package capture

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// Ensure, that evidenceRepoMock does implement evidenceRepo.
// If this is not the case, regenerate this file with moq.
var _ evidenceRepo = &evidenceRepoMock{}

// evidenceRepoMock is a mock implementation of evidenceRepo.
//
//	func TestSomethingThatUsesevidenceRepo(t *testing.T) {
//
//		// make and configure a mocked evidenceRepo
//		mockedevidenceRepo := &evidenceRepoMock{
//			CreateFunc: func(ctx context.Context, userID uuid.UUID, ev *domain.Evidence) (*domain.Evidence, error) {
//				panic("mock out the Create method")
//			},
//			ResolveOwnedFunc: func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
//				panic("mock out the ResolveOwned method")
//			},
//		}
//
//		// use mockedevidenceRepo in code that requires evidenceRepo
//		// and then make assertions.
//
//	}
type evidenceRepoMock struct {
	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, userID uuid.UUID, ev *domain.Evidence) (*domain.Evidence, error)

	// ResolveOwnedFunc mocks the ResolveOwned method.
	ResolveOwnedFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	// calls tracks calls to the methods.
	calls struct {
		// Create holds details about calls to the Create method.
		Create []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// Ev is the ev argument value.
			Ev *domain.Evidence
		}
		// ResolveOwned holds details about calls to the ResolveOwned method.
		ResolveOwned []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// Ids is the ids argument value.
			Ids []uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockResolveOwned sync.RWMutex
}

// Create calls CreateFunc.
func (mock *evidenceRepoMock) Create(ctx context.Context, userID uuid.UUID, ev *domain.Evidence) (*domain.Evidence, error) {
	if mock.CreateFunc == nil {
		panic("evidenceRepoMock.CreateFunc: method is nil but evidenceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ev     *domain.Evidence
	}{
		Ctx:    ctx,
		UserID: userID,
		Ev:     ev,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, ev)
}

// CreateCalls gets all the calls that were made to Create.
// Check the length with:
//
//	len(mockedevidenceRepo.CreateCalls())
func (mock *evidenceRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Ev     *domain.Evidence
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ev     *domain.Evidence
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// ResolveOwned calls ResolveOwnedFunc.
func (mock *evidenceRepoMock) ResolveOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.ResolveOwnedFunc == nil {
		panic("evidenceRepoMock.ResolveOwnedFunc: method is nil but evidenceRepo.ResolveOwned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Ids:    ids,
	}
	mock.lockResolveOwned.Lock()
	mock.calls.ResolveOwned = append(mock.calls.ResolveOwned, callInfo)
	mock.lockResolveOwned.Unlock()
	return mock.ResolveOwnedFunc(ctx, userID, ids)
}

// ResolveOwnedCalls gets all the calls that were made to ResolveOwned.
// Check the length with:
//
//	len(mockedevidenceRepo.ResolveOwnedCalls())
func (mock *evidenceRepoMock) ResolveOwnedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Ids    []uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}
	mock.lockResolveOwned.RLock()
	calls = mock.calls.ResolveOwned
	mock.lockResolveOwned.RUnlock()
	return calls
}
