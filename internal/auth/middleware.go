package auth

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole allows only users with one of roles; others get 403
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAuthenticated(c) {
				return c.Redirect(http.StatusFound, "/login")
			}
			if !HasRole(c, roles...) {
				slog.Debug("role check failed", "path", c.Path(), "required", roles)
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
