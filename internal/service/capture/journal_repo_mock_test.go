package capture

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
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
//			EvidenceIDsFunc: func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) ([]uuid.UUID, error) {
//				panic("mock out the EvidenceIDs method")
//			},
//			GetByIDFunc: func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error) {
//				panic("mock out the GetByID method")
//			},
//		}
//
//		// use mockedjournalRepo in code that requires journalRepo
//		// and then make assertions.
//
//	}
type journalRepoMock struct {
	// EvidenceIDsFunc mocks the EvidenceIDs method.
	EvidenceIDsFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) ([]uuid.UUID, error)

	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error)

	// calls tracks calls to the methods.
	calls struct {
		// EvidenceIDs holds details about calls to the EvidenceIDs method.
		EvidenceIDs []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// EntryID is the entryID argument value.
			EntryID uuid.UUID
		}
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// EntryID is the entryID argument value.
			EntryID uuid.UUID
		}
	}
	lockEvidenceIDs sync.RWMutex
	lockGetByID     sync.RWMutex
}

// EvidenceIDs calls EvidenceIDsFunc.
func (mock *journalRepoMock) EvidenceIDs(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) ([]uuid.UUID, error) {
	if mock.EvidenceIDsFunc == nil {
		panic("journalRepoMock.EvidenceIDsFunc: method is nil but journalRepo.EvidenceIDs was just called")
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
	mock.lockEvidenceIDs.Lock()
	mock.calls.EvidenceIDs = append(mock.calls.EvidenceIDs, callInfo)
	mock.lockEvidenceIDs.Unlock()
	return mock.EvidenceIDsFunc(ctx, userID, entryID)
}

// EvidenceIDsCalls gets all the calls that were made to EvidenceIDs.
// Check the length with:
//
//	len(mockedjournalRepo.EvidenceIDsCalls())
func (mock *journalRepoMock) EvidenceIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}
	mock.lockEvidenceIDs.RLock()
	calls = mock.calls.EvidenceIDs
	mock.lockEvidenceIDs.RUnlock()
	return calls
}

// GetByID calls GetByIDFunc.
func (mock *journalRepoMock) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("journalRepoMock.GetByIDFunc: method is nil but journalRepo.GetByID was just called")
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
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

// GetByIDCalls gets all the calls that were made to GetByID.
// Check the length with:
//
//	len(mockedjournalRepo.GetByIDCalls())
func (mock *journalRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
