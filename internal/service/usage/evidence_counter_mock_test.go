package usage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Ensure, that evidenceCounterMock does implement evidenceCounter.
// If this is not the case, regenerate this file with moq.
var _ evidenceCounter = &evidenceCounterMock{}

// evidenceCounterMock is a mock implementation of evidenceCounter.
//
//	func TestSomethingThatUsesevidenceCounter(t *testing.T) {
//
//		// make and configure a mocked evidenceCounter
//		mockedevidenceCounter := &evidenceCounterMock{
//			CountByUserFunc: func(ctx context.Context, userID uuid.UUID) (int, error) {
//				panic("mock out the CountByUser method")
//			},
//		}
//
//		// use mockedevidenceCounter in code that requires evidenceCounter
//		// and then make assertions.
//
//	}
type evidenceCounterMock struct {
	// CountByUserFunc mocks the CountByUser method.
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	// calls tracks calls to the methods.
	calls struct {
		// CountByUser holds details about calls to the CountByUser method.
		CountByUser []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
		}
	}
	lockCountByUser sync.RWMutex
}

// CountByUser calls CountByUserFunc.
func (mock *evidenceCounterMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("evidenceCounterMock.CountByUserFunc: method is nil but evidenceCounter.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

// CountByUserCalls gets all the calls that were made to CountByUser.
// Check the length with:
//
//	len(mockedevidenceCounter.CountByUserCalls())
func (mock *evidenceCounterMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountByUser.RLock()
	calls = mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}
