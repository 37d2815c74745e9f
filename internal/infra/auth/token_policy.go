package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
)

const tokenEntropyBytes = 32

type systemClock struct{}

// NewSystemClock returns a clock reading the wall time in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type randomTokenPolicy struct {
	clock service.Clock
}

// NewTokenPolicy builds a TokenPolicy that stamps expiries using clock.
func NewTokenPolicy(clock service.Clock) service.TokenPolicy {
	return &randomTokenPolicy{clock: clock}
}

// IssueToken returns a base64url token carrying 256 bits from crypto/rand.
func (p *randomTokenPolicy) IssueToken(purpose entity.TokenPurpose, validity time.Duration) (*entity.PendingToken, error) {
	if !purpose.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrTokenGenerationFailed, "unknown token purpose %q", purpose)
	}
	if validity <= 0 {
		return nil, errors.Wrapf(domainerrors.ErrTokenGenerationFailed, "non-positive validity %s", validity)
	}

	raw := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	return &entity.PendingToken{
		Purpose:   purpose,
		Value:     base64.RawURLEncoding.EncodeToString(raw),
		ExpiresAt: p.clock.Now().Add(validity),
	}, nil
}

// Validate is true iff stored is non-empty, equals presented exactly and now is before the expiry.
func (p *randomTokenPolicy) Validate(stored *entity.PendingToken, presented string, now time.Time) bool {
	if stored == nil || stored.Value == "" || presented == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(stored.Value), []byte(presented)) != 1 {
		return false
	}

	return now.Before(stored.ExpiresAt)
}
