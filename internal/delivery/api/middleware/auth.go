package middleware

import (
	"slices"
	"strings"

	"mdr/internal/delivery/api/response"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/constants"
	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the account ID
// and roles on the echo.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(constants.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, constants.BearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_ACCESS_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetAccount(c, claims.AccountID, claims.Roles)

		return next(c)
	}
}

// RequireRole lets the request through only when the authenticated account
// holds one of the roles. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles).ToStrings()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, ok := deliverycontext.GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.ContainsFunc(granted, func(role string) bool { return slices.Contains(allowed, role) }) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require "+strings.Join(allowed, " or ")+" role")
			}

			return next(c)
		}
	}
}
