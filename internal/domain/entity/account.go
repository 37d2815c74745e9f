// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the aggregate root for a system user: credentials, role and the
// pending lifecycle tokens.
type Account struct {
	ID           uuid.UUID     // Immutable unique identifier assigned at creation.
	Username     string        // Unique login name, compared case-sensitively.
	Role         Role          // Access class of the account.
	Email        string        // Unique contact address; links are mailed here.
	PhoneNumber  string        // Contact phone number.
	PasswordHash string        // Digest produced by the password hasher.
	IAMID        string        // Linkage id to the external identity provider record.
	IsVerified   bool          // Whether the current email has been confirmed.
	VerifyToken  *PendingToken // Setup or email verification token.
	ResetToken   *PendingToken // Password reset token.
	DeleteToken  *PendingToken // Deletion confirmation token.
	PatientID    *uuid.UUID    // Linked patient profile, set only for self-registered patients.
	Patient      *Patient      // Loaded patient profile, may be nil even when PatientID is set.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Token returns the pending token stored for the purpose, or nil.
func (a *Account) Token(purpose TokenPurpose) *PendingToken {
	switch purpose {
	case TokenPurposeVerify:
		return a.VerifyToken
	case TokenPurposeReset:
		return a.ResetToken
	case TokenPurposeDelete:
		return a.DeleteToken
	default:
		return nil
	}
}

// SetToken stores token in the slot matching its purpose, replacing any previous one.
func (a *Account) SetToken(token *PendingToken) {
	if token == nil {
		return
	}

	switch token.Purpose {
	case TokenPurposeVerify:
		a.VerifyToken = token
	case TokenPurposeReset:
		a.ResetToken = token
	case TokenPurposeDelete:
		a.DeleteToken = token
	}
}

// ClearToken empties the slot for purpose.
func (a *Account) ClearToken(purpose TokenPurpose) {
	switch purpose {
	case TokenPurposeVerify:
		a.VerifyToken = nil
	case TokenPurposeReset:
		a.ResetToken = nil
	case TokenPurposeDelete:
		a.DeleteToken = nil
	}
}

// IsPatient reports whether the account belongs to a self-registered patient.
func (a *Account) IsPatient() bool {
	return a.Role == RolePatient
}
