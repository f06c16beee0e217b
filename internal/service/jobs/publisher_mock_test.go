package jobs

import (
	"context"
	"sync"

	"github.com/casetrail/casetrail-backend/internal/jobqueue"
)

// Ensure, that publisherMock does implement publisher.
// If this is not the case, regenerate this file with moq.
var _ publisher = &publisherMock{}

// publisherMock is a mock implementation of publisher.
//
//	func TestSomethingThatUsespublisher(t *testing.T) {
//
//		// make and configure a mocked publisher
//		mockedpublisher := &publisherMock{
//			PublishCaptureSubmittedFunc: func(ctx context.Context, payload jobqueue.CaptureSubmitted) error {
//				panic("mock out the PublishCaptureSubmitted method")
//			},
//		}
//
//		// use mockedpublisher in code that requires publisher
//		// and then make assertions.
//
//	}
type publisherMock struct {
	// PublishCaptureSubmittedFunc mocks the PublishCaptureSubmitted method.
	PublishCaptureSubmittedFunc func(ctx context.Context, payload jobqueue.CaptureSubmitted) error

	// calls tracks calls to the methods.
	calls struct {
		// PublishCaptureSubmitted holds details about calls to the PublishCaptureSubmitted method.
		PublishCaptureSubmitted []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Payload is the payload argument value.
			Payload jobqueue.CaptureSubmitted
		}
	}
	lockPublishCaptureSubmitted sync.RWMutex
}

// PublishCaptureSubmitted calls PublishCaptureSubmittedFunc.
func (mock *publisherMock) PublishCaptureSubmitted(ctx context.Context, payload jobqueue.CaptureSubmitted) error {
	if mock.PublishCaptureSubmittedFunc == nil {
		panic("publisherMock.PublishCaptureSubmittedFunc: method is nil but publisher.PublishCaptureSubmitted was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload jobqueue.CaptureSubmitted
	}{
		Ctx:     ctx,
		Payload: payload,
	}
	mock.lockPublishCaptureSubmitted.Lock()
	mock.calls.PublishCaptureSubmitted = append(mock.calls.PublishCaptureSubmitted, callInfo)
	mock.lockPublishCaptureSubmitted.Unlock()
	return mock.PublishCaptureSubmittedFunc(ctx, payload)
}

// PublishCaptureSubmittedCalls gets all the calls that were made to PublishCaptureSubmitted.
// Check the length with:
//
//	len(mockedpublisher.PublishCaptureSubmittedCalls())
func (mock *publisherMock) PublishCaptureSubmittedCalls() []struct {
	Ctx     context.Context
	Payload jobqueue.CaptureSubmitted
} {
	var calls []struct {
		Ctx     context.Context
		Payload jobqueue.CaptureSubmitted
	}
	mock.lockPublishCaptureSubmitted.RLock()
	calls = mock.calls.PublishCaptureSubmitted
	mock.lockPublishCaptureSubmitted.RUnlock()
	return calls
}
