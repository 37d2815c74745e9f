package auth

import (
	"testing"

	"mdr/config"
	domainerrors "mdr/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost, nil).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	strongPassword := "StrongPass123!"
	hash, err := hasher.Hash(strongPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	assert.True(t, hasher.Check(strongPassword, hash))
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	hasher := newTestHasher()

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}

	_, err := hasher.Hash(string(long))
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Passwrd1234", "must contain at least one special character"},
		{"Password123!", "forbidden words"},
		{"MyAdmin123!", "forbidden words"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, "Expected error for password: %s", tc.password)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
		assert.Contains(t, appErr.Details(), tc.expectedErr, "Details should contain: %s", tc.expectedErr)
	}
}

func TestBcryptHasher_ConfiguredPolicy(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        10,
			RequireLowercase: true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	assert.NoError(t, hasher.ValidatePasswordStrength("lowercaseonly"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost, nil)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99, nil).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
