package jobs

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Ensure, that usageGateMock does implement usageGate.
// If this is not the case, regenerate this file with moq.
var _ usageGate = &usageGateMock{}

// usageGateMock is a mock implementation of usageGate.
//
//	func TestSomethingThatUsesusageGate(t *testing.T) {
//
//		// make and configure a mocked usageGate
//		mockedusageGate := &usageGateMock{
//			CheckCanCaptureFunc: func(ctx context.Context, userID uuid.UUID) error {
//				panic("mock out the CheckCanCapture method")
//			},
//		}
//
//		// use mockedusageGate in code that requires usageGate
//		// and then make assertions.
//
//	}
type usageGateMock struct {
	// CheckCanCaptureFunc mocks the CheckCanCapture method.
	CheckCanCaptureFunc func(ctx context.Context, userID uuid.UUID) error

	// calls tracks calls to the methods.
	calls struct {
		// CheckCanCapture holds details about calls to the CheckCanCapture method.
		CheckCanCapture []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
		}
	}
	lockCheckCanCapture sync.RWMutex
}

// CheckCanCapture calls CheckCanCaptureFunc.
func (mock *usageGateMock) CheckCanCapture(ctx context.Context, userID uuid.UUID) error {
	if mock.CheckCanCaptureFunc == nil {
		panic("usageGateMock.CheckCanCaptureFunc: method is nil but usageGate.CheckCanCapture was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCheckCanCapture.Lock()
	mock.calls.CheckCanCapture = append(mock.calls.CheckCanCapture, callInfo)
	mock.lockCheckCanCapture.Unlock()
	return mock.CheckCanCaptureFunc(ctx, userID)
}

// CheckCanCaptureCalls gets all the calls that were made to CheckCanCapture.
// Check the length with:
//
//	len(mockedusageGate.CheckCanCaptureCalls())
func (mock *usageGateMock) CheckCanCaptureCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCheckCanCapture.RLock()
	calls = mock.calls.CheckCanCapture
	mock.lockCheckCanCapture.RUnlock()
	return calls
}
