package auth

import (
	"github.com/bedaie/bedaie-web/internal/middleware"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/labstack/echo/v4"
)

// Re-exported so handlers and tests only need this package.
const (
	DBUserKey          = middleware.DBUserKey
	IsAuthenticatedKey = middleware.IsAuthenticatedKey
)

// Roles stored on users.role.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleCashier   = "cashier"
	RoleAffiliate = "affiliate"
	RoleStaff     = "staff"
)

// GetDBUser retrieves the database user from context
func GetDBUser(c echo.Context) (*db.User, bool) {
	dbUser, ok := c.Get(DBUserKey).(*db.User)
	return dbUser, ok && dbUser != nil
}

// IsAuthenticated checks if the current request is authenticated
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	return isAuth
}

// GetUserID gets the user ID of the session user
func GetUserID(c echo.Context) (string, bool) {
	if dbUser, ok := GetDBUser(c); ok {
		return dbUser.ID, true
	}
	return "", false
}

// HasRole reports whether the session user has one of roles
func HasRole(c echo.Context, roles ...string) bool {
	dbUser, ok := GetDBUser(c)
	if !ok {
		return false
	}
	for _, role := range roles {
		if dbUser.Role == role {
			return true
		}
	}
	return false
}

// IsAdmin checks if the session user is an admin
func IsAdmin(c echo.Context) bool {
	return HasRole(c, RoleAdmin)
}

// CSRFToken returns the token issued by the CSRF middleware, or "".
func CSRFToken(c echo.Context) string {
	token, _ := c.Get(middleware.CSRFContextKey).(string)
	return token
}
