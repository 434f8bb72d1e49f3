package session

import (
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "bedaie_session"
	dataKey     = "data"
)

// ErrNoSession is returned when the request carries no usable session.
var ErrNoSession = errors.New("no session data")

func init() {
	gob.Register(&Data{})
}

// Manager manages user sessions
type Manager struct {
	store sessions.Store
}

// NewManager creates a new session manager
func NewManager(secret string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
	}
}

// CreateSession stores the user id in the session cookie
func (m *Manager) CreateSession(c echo.Context, userID string) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values[dataKey] = &Data{UserID: userID, IssuedAt: time.Now().UTC()}

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves session data
func (m *Manager) GetSession(c echo.Context) (*Data, error) {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	data, ok := session.Values[dataKey].(*Data)
	if !ok || data == nil || data.UserID == "" {
		return nil, ErrNoSession
	}

	return data, nil
}

// DestroySession clears the session
func (m *Manager) DestroySession(c echo.Context) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Options.MaxAge = -1
	delete(session.Values, dataKey)

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}
