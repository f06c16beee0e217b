package capture

import (
	"context"
	"sync"

	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/service/extraction"
)

// Ensure, that extractorMock does implement extractor.
// If this is not the case, regenerate this file with moq.
var _ extractor = &extractorMock{}

// extractorMock is a mock implementation of extractor.
//
//	func TestSomethingThatUsesextractor(t *testing.T) {
//
//		// make and configure a mocked extractor
//		mockedextractor := &extractorMock{
//			ExtractFunc: func(ctx context.Context, in extraction.Input) (*domain.ExtractionResult, error) {
//				panic("mock out the Extract method")
//			},
//		}
//
//		// use mockedextractor in code that requires extractor
//		// and then make assertions.
//
//	}
type extractorMock struct {
	// ExtractFunc mocks the Extract method.
	ExtractFunc func(ctx context.Context, in extraction.Input) (*domain.ExtractionResult, error)

	// calls tracks calls to the methods.
	calls struct {
		// Extract holds details about calls to the Extract method.
		Extract []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// In is the in argument value.
			In extraction.Input
		}
	}
	lockExtract sync.RWMutex
}

// Extract calls ExtractFunc.
func (mock *extractorMock) Extract(ctx context.Context, in extraction.Input) (*domain.ExtractionResult, error) {
	if mock.ExtractFunc == nil {
		panic("extractorMock.ExtractFunc: method is nil but extractor.Extract was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  extraction.Input
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, in)
}

// ExtractCalls gets all the calls that were made to Extract.
// Check the length with:
//
//	len(mockedextractor.ExtractCalls())
func (mock *extractorMock) ExtractCalls() []struct {
	Ctx context.Context
	In  extraction.Input
} {
	var calls []struct {
		Ctx context.Context
		In  extraction.Input
	}
	mock.lockExtract.RLock()
	calls = mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}
