package worker

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Ensure, that journalRepoMock does implement journalRepo.
// If this is not the case, regenerate this file with moq.
var _ journalRepo = &journalRepoMock{}

// journalRepoMock is a mock implementation of journalRepo.
//
//	func TestSomethingThatUsesjournalRepo(t *testing.T) {
//
//		// make and configure a mocked journalRepo
//		mockedjournalRepo := &journalRepoMock{
//			CancelFunc: func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (bool, error) {
//				panic("mock out the Cancel method")
//			},
//			CompleteFunc: func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, raw json.RawMessage) (bool, error) {
//				panic("mock out the Complete method")
//			},
//		}
//
//		// use mockedjournalRepo in code that requires journalRepo
//		// and then make assertions.
//
//	}
type journalRepoMock struct {
	// CancelFunc mocks the Cancel method.
	CancelFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (bool, error)

	// CompleteFunc mocks the Complete method.
	CompleteFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, raw json.RawMessage) (bool, error)

	// calls tracks calls to the methods.
	calls struct {
		// Cancel holds details about calls to the Cancel method.
		Cancel []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// EntryID is the entryID argument value.
			EntryID uuid.UUID
		}
		// Complete holds details about calls to the Complete method.
		Complete []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// EntryID is the entryID argument value.
			EntryID uuid.UUID
			// Raw is the raw argument value.
			Raw json.RawMessage
		}
	}
	lockCancel   sync.RWMutex
	lockComplete sync.RWMutex
}

// Cancel calls CancelFunc.
func (mock *journalRepoMock) Cancel(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (bool, error) {
	if mock.CancelFunc == nil {
		panic("journalRepoMock.CancelFunc: method is nil but journalRepo.Cancel was just called")
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
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, userID, entryID)
}

// CancelCalls gets all the calls that were made to Cancel.
// Check the length with:
//
//	len(mockedjournalRepo.CancelCalls())
func (mock *journalRepoMock) CancelCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}
	mock.lockCancel.RLock()
	calls = mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

// Complete calls CompleteFunc.
func (mock *journalRepoMock) Complete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, raw json.RawMessage) (bool, error) {
	if mock.CompleteFunc == nil {
		panic("journalRepoMock.CompleteFunc: method is nil but journalRepo.Complete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
		Raw     json.RawMessage
	}{
		Ctx:     ctx,
		UserID:  userID,
		EntryID: entryID,
		Raw:     raw,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, userID, entryID, raw)
}

// CompleteCalls gets all the calls that were made to Complete.
// Check the length with:
//
//	len(mockedjournalRepo.CompleteCalls())
func (mock *journalRepoMock) CompleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
	Raw     json.RawMessage
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
		Raw     json.RawMessage
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
