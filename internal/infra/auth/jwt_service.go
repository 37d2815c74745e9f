package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mdr/config"
	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
)

const (
	tokenTypeAccess = "access"
	tokenIssuer     = "mdr"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	clock        service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := config.DefaultAccessTokenTTL
	if cfg.Tokens != nil && cfg.Tokens.AccessTokenTTL > 0 {
		ttl = cfg.Tokens.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		clock:        clock,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the account's id, email and role.
func (s *jwtService) GenerateAccessToken(account *entity.Account) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":      account.ID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
		"iss":      tokenIssuer,
		"type":     tokenTypeAccess,
		"username": account.Username,
		"email":    account.Email,
		"roles":    []string{account.Role.String()},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claimsFromMap(mapClaims)
}

// AccessTokenTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "token subject missing")
	}

	accountID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid account ID format in token")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	claims := &service.Claims{
		AccountID: accountID,
		Type:      tokenType,
	}
	claims.Username, _ = mapClaims["username"].(string)
	claims.Email, _ = mapClaims["email"].(string)

	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	claims.Subject = subject
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}
	claims.Issuer, _ = mapClaims.GetIssuer()

	return claims, nil
}
