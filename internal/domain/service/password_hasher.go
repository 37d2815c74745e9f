// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not satisfy the configured policy.
	ValidatePasswordStrength(password string) error
}

// PasswordGenerator produces random passwords for accounts created on someone else's behalf.
type PasswordGenerator interface {
	GenerateTemporary() (string, error)
}
