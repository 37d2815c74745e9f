package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyAccountID is the key for the authenticated account ID in echo.Context.
	KeyAccountID ContextKey = "account_id"

	// KeyRoles is the key for the authenticated account roles in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetAccount stores the authenticated account ID and roles in echo.Context.
func SetAccount(c echo.Context, accountID uuid.UUID, roles []string) {
	c.Set(string(KeyAccountID), accountID)
	c.Set(string(KeyRoles), roles)
}

// GetAccountID returns the authenticated account ID, if any.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyAccountID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the authenticated account roles, if any.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}
