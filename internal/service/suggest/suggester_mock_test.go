package suggest

import (
	"context"
	"sync"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// Ensure, that suggesterMock does implement suggester.
// If this is not the case, regenerate this file with moq.
var _ suggester = &suggesterMock{}

// suggesterMock is a mock implementation of suggester.
//
//	func TestSomethingThatUsessuggester(t *testing.T) {
//
//		// make and configure a mocked suggester
//		mockedsuggester := &suggesterMock{
//			SuggestEvidenceFunc: func(ctx context.Context, cc domain.CaseContext, e *domain.Event) ([]domain.EvidenceSuggestion, error) {
//				panic("mock out the SuggestEvidence method")
//			},
//		}
//
//		// use mockedsuggester in code that requires suggester
//		// and then make assertions.
//
//	}
type suggesterMock struct {
	// SuggestEvidenceFunc mocks the SuggestEvidence method.
	SuggestEvidenceFunc func(ctx context.Context, cc domain.CaseContext, e *domain.Event) ([]domain.EvidenceSuggestion, error)

	// calls tracks calls to the methods.
	calls struct {
		// SuggestEvidence holds details about calls to the SuggestEvidence method.
		SuggestEvidence []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Cc is the cc argument value.
			Cc domain.CaseContext
			// E is the e argument value.
			E *domain.Event
		}
	}
	lockSuggestEvidence sync.RWMutex
}

// SuggestEvidence calls SuggestEvidenceFunc.
func (mock *suggesterMock) SuggestEvidence(ctx context.Context, cc domain.CaseContext, e *domain.Event) ([]domain.EvidenceSuggestion, error) {
	if mock.SuggestEvidenceFunc == nil {
		panic("suggesterMock.SuggestEvidenceFunc: method is nil but suggester.SuggestEvidence was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cc  domain.CaseContext
		E   *domain.Event
	}{
		Ctx: ctx,
		Cc:  cc,
		E:   e,
	}
	mock.lockSuggestEvidence.Lock()
	mock.calls.SuggestEvidence = append(mock.calls.SuggestEvidence, callInfo)
	mock.lockSuggestEvidence.Unlock()
	return mock.SuggestEvidenceFunc(ctx, cc, e)
}

// SuggestEvidenceCalls gets all the calls that were made to SuggestEvidence.
// Check the length with:
//
//	len(mockedsuggester.SuggestEvidenceCalls())
func (mock *suggesterMock) SuggestEvidenceCalls() []struct {
	Ctx context.Context
	Cc  domain.CaseContext
	E   *domain.Event
} {
	var calls []struct {
		Ctx context.Context
		Cc  domain.CaseContext
		E   *domain.Event
	}
	mock.lockSuggestEvidence.RLock()
	calls = mock.calls.SuggestEvidence
	mock.lockSuggestEvidence.RUnlock()
	return calls
}
