package middleware

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/bedaie/bedaie-web/internal/session"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/labstack/echo/v4"
)

// Echo context keys set by LoadSession.
const (
	DBUserKey          = "db_user"
	IsAuthenticatedKey = "is_authenticated"
)

// UserLookup loads a user by id.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (db.User, error)
}

// LoadSession is middleware that resolves the session cookie to a user row.
// Requests without a valid session continue unauthenticated.
func LoadSession(sessionMgr *session.Manager, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(IsAuthenticatedKey, false)

			data, err := sessionMgr.GetSession(c)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					slog.Debug("ignoring unreadable session", "path", c.Request().URL.Path, "error", err)
				}
				return next(c)
			}

			user, err := users.GetUserByID(c.Request().Context(), data.UserID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					slog.Warn("session refers to unknown user", "user_id", data.UserID)
				} else {
					slog.Error("failed to load session user", "user_id", data.UserID, "error", err)
				}
				return next(c)
			}

			c.Set(DBUserKey, &user)
			c.Set(IsAuthenticatedKey, true)

			return next(c)
		}
	}
}
