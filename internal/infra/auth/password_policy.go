package auth

import (
	"strconv"
	"strings"
	"unicode"

	"mdr/config"
	domainerrors "mdr/internal/domain/errors"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	defaultMaxPasswordLength = 72
)

var forbiddenPasswordWords = []string{
	"password",
	"admin",
	"qwerty",
	"letmein",
	"welcome",
	"123456",
	"hospital",
}

type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

func newPasswordPolicy(cfg *config.PasswordStrengthConfig) passwordPolicy {
	if cfg == nil {
		return passwordPolicy{
			minLength:        defaultMinPasswordLength,
			maxLength:        defaultMaxPasswordLength,
			requireUppercase: true,
			requireLowercase: true,
			requireNumbers:   true,
			requireSpecial:   true,
		}
	}

	policy := passwordPolicy{
		minLength:        cfg.MinLength,
		maxLength:        cfg.MaxLength,
		requireUppercase: cfg.RequireUppercase,
		requireLowercase: cfg.RequireLowercase,
		requireNumbers:   cfg.RequireNumbers,
		requireSpecial:   cfg.RequireSpecial,
	}
	if policy.minLength <= 0 {
		policy.minLength = defaultMinPasswordLength
	}
	if policy.maxLength <= 0 || policy.maxLength > defaultMaxPasswordLength {
		policy.maxLength = defaultMaxPasswordLength
	}

	return policy
}

func (p passwordPolicy) validate(password string) error {
	if len(password) < p.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at least " + strconv.Itoa(p.minLength) + " characters long")
	}
	if len(password) > p.maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at most " + strconv.Itoa(p.maxLength) + " characters long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case p.requireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	case p.requireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	case p.requireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	case p.requireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	if containsForbiddenWord(password) {
		return domainerrors.ErrPasswordForbiddenWords.WithDetails("password contains forbidden words or patterns")
	}

	return nil
}

func containsForbiddenWord(password string) bool {
	lowered := strings.ToLower(password)
	for _, word := range forbiddenPasswordWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}
