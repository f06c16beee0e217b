package jobs

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
//			CreateFunc: func(ctx context.Context, userID uuid.UUID, e *domain.JournalEntry) (*domain.JournalEntry, error) {
//				panic("mock out the Create method")
//			},
//			LinkEvidenceFunc: func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, evidenceIDs []uuid.UUID) error {
//				panic("mock out the LinkEvidence method")
//			},
//		}
//
//		// use mockedjournalRepo in code that requires journalRepo
//		// and then make assertions.
//
//	}
type journalRepoMock struct {
	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, userID uuid.UUID, e *domain.JournalEntry) (*domain.JournalEntry, error)

	// LinkEvidenceFunc mocks the LinkEvidence method.
	LinkEvidenceFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, evidenceIDs []uuid.UUID) error

	// calls tracks calls to the methods.
	calls struct {
		// Create holds details about calls to the Create method.
		Create []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// E is the e argument value.
			E *domain.JournalEntry
		}
		// LinkEvidence holds details about calls to the LinkEvidence method.
		LinkEvidence []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// EntryID is the entryID argument value.
			EntryID uuid.UUID
			// EvidenceIDs is the evidenceIDs argument value.
			EvidenceIDs []uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockLinkEvidence sync.RWMutex
}

// Create calls CreateFunc.
func (mock *journalRepoMock) Create(ctx context.Context, userID uuid.UUID, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("journalRepoMock.CreateFunc: method is nil but journalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		E      *domain.JournalEntry
	}{
		Ctx:    ctx,
		UserID: userID,
		E:      e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, e)
}

// CreateCalls gets all the calls that were made to Create.
// Check the length with:
//
//	len(mockedjournalRepo.CreateCalls())
func (mock *journalRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	E      *domain.JournalEntry
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		E      *domain.JournalEntry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// LinkEvidence calls LinkEvidenceFunc.
func (mock *journalRepoMock) LinkEvidence(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, evidenceIDs []uuid.UUID) error {
	if mock.LinkEvidenceFunc == nil {
		panic("journalRepoMock.LinkEvidenceFunc: method is nil but journalRepo.LinkEvidence was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		EntryID     uuid.UUID
		EvidenceIDs []uuid.UUID
	}{
		Ctx:         ctx,
		UserID:      userID,
		EntryID:     entryID,
		EvidenceIDs: evidenceIDs,
	}
	mock.lockLinkEvidence.Lock()
	mock.calls.LinkEvidence = append(mock.calls.LinkEvidence, callInfo)
	mock.lockLinkEvidence.Unlock()
	return mock.LinkEvidenceFunc(ctx, userID, entryID, evidenceIDs)
}

// LinkEvidenceCalls gets all the calls that were made to LinkEvidence.
// Check the length with:
//
//	len(mockedjournalRepo.LinkEvidenceCalls())
func (mock *journalRepoMock) LinkEvidenceCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	EntryID     uuid.UUID
	EvidenceIDs []uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		UserID      uuid.UUID
		EntryID     uuid.UUID
		EvidenceIDs []uuid.UUID
	}
	mock.lockLinkEvidence.RLock()
	calls = mock.calls.LinkEvidence
	mock.lockLinkEvidence.RUnlock()
	return calls
}
