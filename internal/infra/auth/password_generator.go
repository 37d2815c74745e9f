package auth

import (
	"crypto/rand"
	"math/big"

	"mdr/config"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
)

const (
	defaultTemporaryPasswordLength = 16
	maxGenerateAttempts            = 8

	lowerChars   = "abcdefghijkmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitChars   = "23456789"
	specialChars = "!@#$%^&*-_=+?"
)

type randomPasswordGenerator struct {
	length int
	policy passwordPolicy
}

// NewPasswordGenerator builds a generator whose output always passes the strength policy.
func NewPasswordGenerator(cfg *config.Config) service.PasswordGenerator {
	length := defaultTemporaryPasswordLength
	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		if cfg.Auth != nil && cfg.Auth.TemporaryPasswordLength > 0 {
			length = cfg.Auth.TemporaryPasswordLength
		}
		strength = cfg.PasswordStrength
	}

	policy := newPasswordPolicy(strength)
	if length < policy.minLength {
		length = policy.minLength
	}
	if length > policy.maxLength {
		length = policy.maxLength
	}

	return &randomPasswordGenerator{length: length, policy: policy}
}

// GenerateTemporary returns a random password with at least one character from each class.
func (g *randomPasswordGenerator) GenerateTemporary() (string, error) {
	for range maxGenerateAttempts {
		candidate, err := g.generate()
		if err != nil {
			return "", err
		}
		if g.policy.validate(candidate) == nil {
			return candidate, nil
		}
	}

	return "", errors.New("failed to generate a temporary password satisfying the policy")
}

func (g *randomPasswordGenerator) generate() (string, error) {
	classes := []string{lowerChars, upperChars, digitChars, specialChars}
	all := lowerChars + upperChars + digitChars + specialChars

	buf := make([]byte, g.length)
	for i := range buf {
		charset := all
		if i < len(classes) {
			charset = classes[i]
		}

		c, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}

	if err := shuffle(buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, errors.Wrap(err, "read random")
	}

	return charset[n.Int64()], nil
}

func shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return errors.Wrap(err, "read random")
		}
		j := int(n.Int64())
		buf[i], buf[j] = buf[j], buf[i]
	}

	return nil
}
