package worker

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// Ensure, that captureRunnerMock does implement captureRunner.
// If this is not the case, regenerate this file with moq.
var _ captureRunner = &captureRunnerMock{}

// captureRunnerMock is a mock implementation of captureRunner.
//
//	func TestSomethingThatUsescaptureRunner(t *testing.T) {
//
//		// make and configure a mocked captureRunner
//		mockedcaptureRunner := &captureRunnerMock{
//			ProcessJournalEntryFunc: func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.CaptureResult, json.RawMessage, error) {
//				panic("mock out the ProcessJournalEntry method")
//			},
//		}
//
//		// use mockedcaptureRunner in code that requires captureRunner
//		// and then make assertions.
//
//	}
type captureRunnerMock struct {
	// ProcessJournalEntryFunc mocks the ProcessJournalEntry method.
	ProcessJournalEntryFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.CaptureResult, json.RawMessage, error)

	// calls tracks calls to the methods.
	calls struct {
		// ProcessJournalEntry holds details about calls to the ProcessJournalEntry method.
		ProcessJournalEntry []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// EntryID is the entryID argument value.
			EntryID uuid.UUID
		}
	}
	lockProcessJournalEntry sync.RWMutex
}

// ProcessJournalEntry calls ProcessJournalEntryFunc.
func (mock *captureRunnerMock) ProcessJournalEntry(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.CaptureResult, json.RawMessage, error) {
	if mock.ProcessJournalEntryFunc == nil {
		panic("captureRunnerMock.ProcessJournalEntryFunc: method is nil but captureRunner.ProcessJournalEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EntryID: entryID,
	}
	mock.lockProcessJournalEntry.Lock()
	mock.calls.ProcessJournalEntry = append(mock.calls.ProcessJournalEntry, callInfo)
	mock.lockProcessJournalEntry.Unlock()
	return mock.ProcessJournalEntryFunc(ctx, userID, entryID)
}

// ProcessJournalEntryCalls gets all the calls that were made to ProcessJournalEntry.
// Check the length with:
//
//	len(mockedcaptureRunner.ProcessJournalEntryCalls())
func (mock *captureRunnerMock) ProcessJournalEntryCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}
	mock.lockProcessJournalEntry.RLock()
	calls = mock.calls.ProcessJournalEntry
	mock.lockProcessJournalEntry.RUnlock()
	return calls
}
