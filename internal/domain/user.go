package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Authentication is delegated to an external auth
// provider; this row carries the profile and billing tier the pipeline
// needs.
type User struct {
	ID               uuid.UUID
	DisplayName      string
	SubscriptionTier SubscriptionTier
	CaseType         *string
	CaseRole         *string
	OpposingParty    *string
	Goals            *string
	CreatedAt        time.Time
}

// CaseContext assembles the extraction context from the profile, falling
// back to generic values for unset fields.
func (u *User) CaseContext() CaseContext {
	ctx := GenericCaseContext()
	if u.DisplayName != "" {
		ctx.DisplayName = u.DisplayName
	}
	if u.CaseType != nil && *u.CaseType != "" {
		ctx.CaseType = *u.CaseType
	}
	if u.CaseRole != nil && *u.CaseRole != "" {
		ctx.Role = *u.CaseRole
	}
	if u.OpposingParty != nil {
		ctx.OpposingParty = *u.OpposingParty
	}
	if u.Goals != nil {
		ctx.Goals = *u.Goals
	}
	return ctx
}
