package extraction

import (
	"context"
	"sync"

	"github.com/casetrail/casetrail-backend/internal/provider"
)

// Ensure, that llmClientMock does implement llmClient.
// If this is not the case, regenerate this file with moq.
var _ llmClient = &llmClientMock{}

// llmClientMock is a mock implementation of llmClient.
//
//	func TestSomethingThatUsesllmClient(t *testing.T) {
//
//		// make and configure a mocked llmClient
//		mockedllmClient := &llmClientMock{
//			CompleteFunc: func(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResponse, error) {
//				panic("mock out the Complete method")
//			},
//		}
//
//		// use mockedllmClient in code that requires llmClient
//		// and then make assertions.
//
//	}
type llmClientMock struct {
	// CompleteFunc mocks the Complete method.
	CompleteFunc func(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResponse, error)

	// calls tracks calls to the methods.
	calls struct {
		// Complete holds details about calls to the Complete method.
		Complete []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Req is the req argument value.
			Req provider.CompletionRequest
		}
	}
	lockComplete sync.RWMutex
}

// Complete calls CompleteFunc.
func (mock *llmClientMock) Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResponse, error) {
	if mock.CompleteFunc == nil {
		panic("llmClientMock.CompleteFunc: method is nil but llmClient.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.CompletionRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

// CompleteCalls gets all the calls that were made to Complete.
// Check the length with:
//
//	len(mockedllmClient.CompleteCalls())
func (mock *llmClientMock) CompleteCalls() []struct {
	Ctx context.Context
	Req provider.CompletionRequest
} {
	var calls []struct {
		Ctx context.Context
		Req provider.CompletionRequest
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
