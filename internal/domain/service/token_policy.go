package service

import (
	"time"

	"mdr/internal/domain/entity"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// TokenPolicy mints and checks single-use lifecycle tokens.
type TokenPolicy interface {
	// IssueToken returns an unguessable token for purpose expiring validity from now.
	IssueToken(purpose entity.TokenPurpose, validity time.Duration) (*entity.PendingToken, error)

	// Validate reports whether presented matches stored and stored has not expired at now.
	Validate(stored *entity.PendingToken, presented string, now time.Time) bool
}
