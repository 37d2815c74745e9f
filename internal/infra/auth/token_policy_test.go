package auth

import (
	"testing"
	"time"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func TestTokenPolicy_IssueToken(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	policy := NewTokenPolicy(&fixedClock{now: t0})

	token, err := policy.IssueToken(entity.TokenPurposeReset, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, entity.TokenPurposeReset, token.Purpose)
	assert.Equal(t, t0.Add(time.Hour), token.ExpiresAt)
	assert.Len(t, token.Value, 43)
}

func TestTokenPolicy_IssueTokenIsUnpredictable(t *testing.T) {
	policy := NewTokenPolicy(NewSystemClock())

	seen := make(map[string]struct{})
	for range 200 {
		token, err := policy.IssueToken(entity.TokenPurposeVerify, time.Minute)
		require.NoError(t, err)

		_, dup := seen[token.Value]
		require.False(t, dup)
		seen[token.Value] = struct{}{}
	}
}

func TestTokenPolicy_IssueTokenRejectsBadInput(t *testing.T) {
	policy := NewTokenPolicy(NewSystemClock())

	_, err := policy.IssueToken("bogus", time.Hour)
	assert.ErrorIs(t, err, domainerrors.ErrTokenGenerationFailed)

	_, err = policy.IssueToken(entity.TokenPurposeDelete, 0)
	assert.ErrorIs(t, err, domainerrors.ErrTokenGenerationFailed)
}

func TestTokenPolicy_Validate(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := &fixedClock{now: t0}
	policy := NewTokenPolicy(clock)

	token, err := policy.IssueToken(entity.TokenPurposeVerify, 24*time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		stored    *entity.PendingToken
		presented string
		now       time.Time
		want      bool
	}{
		{name: "immediately after issue", stored: token, presented: token.Value, now: t0, want: true},
		{name: "one minute before expiry", stored: token, presented: token.Value, now: t0.Add(23*time.Hour + 59*time.Minute), want: true},
		{name: "at expiry instant", stored: token, presented: token.Value, now: token.ExpiresAt, want: false},
		{name: "after expiry", stored: token, presented: token.Value, now: t0.Add(24*time.Hour + time.Minute), want: false},
		{name: "mismatch", stored: token, presented: token.Value + "x", now: t0, want: false},
		{name: "case sensitive", stored: &entity.PendingToken{Value: "AbC", ExpiresAt: t0.Add(time.Hour)}, presented: "abc", now: t0, want: false},
		{name: "nil stored", stored: nil, presented: token.Value, now: t0, want: false},
		{name: "empty stored", stored: &entity.PendingToken{ExpiresAt: t0.Add(time.Hour)}, presented: "", now: t0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Validate(tt.stored, tt.presented, tt.now))
		})
	}
}
