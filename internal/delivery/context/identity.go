package context

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the authenticated caller's numeric ID in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the key for the authenticated caller's role names in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetIdentity stores the authenticated caller on the echo.Context and tags the
// request-scoped logger with user_id.
func SetIdentity(c echo.Context, userID int64, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.Int64("user_id", userID)))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// GetUserID returns the authenticated caller's ID. ok is false on unauthenticated routes.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(string(KeyUserID)).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}

	return userID, true
}

// GetRoles returns the authenticated caller's role names, or nil.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(string(KeyRoles)).([]string)

	return roles
}
