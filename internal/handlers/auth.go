package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bedaie/bedaie-web/internal/auth"
	"github.com/bedaie/bedaie-web/internal/session"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// HandleLogout clears the session cookie and sends the user to the login page
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if userID, ok := auth.GetUserID(c); ok {
		slog.Info("user signed out", "user_id", userID)
	}

	if err := h.sessions.DestroySession(c); err != nil {
		slog.Error("failed to destroy session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to sign out")
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}
