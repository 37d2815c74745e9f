// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"mdr/config"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy passwordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, strength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost, clamped to bcrypt's range.
func NewBcryptHasherWithCost(cost int, strength *config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		cost:   cost,
		policy: newPasswordPolicy(strength),
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured strength policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	return h.policy.validate(password)
}
