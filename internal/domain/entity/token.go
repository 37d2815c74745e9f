package entity

import "time"

// TokenPurpose names the flow a pending token authorizes.
type TokenPurpose string

const (
	// TokenPurposeVerify covers initial account setup and email (re)verification.
	TokenPurposeVerify TokenPurpose = "verify"
	// TokenPurposeReset covers password reset.
	TokenPurposeReset TokenPurpose = "reset"
	// TokenPurposeDelete covers account deletion confirmation.
	TokenPurposeDelete TokenPurpose = "delete"
)

// String returns the string representation of the purpose.
func (p TokenPurpose) String() string {
	return string(p)
}

// IsValid checks if the purpose is a known value.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case TokenPurposeVerify, TokenPurposeReset, TokenPurposeDelete:
		return true
	default:
		return false
	}
}

// PendingToken is a single-use secret awaiting presentation, together with its expiry.
type PendingToken struct {
	Purpose   TokenPurpose
	Value     string
	ExpiresAt time.Time
}
