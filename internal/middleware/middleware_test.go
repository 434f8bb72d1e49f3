package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bedaie/bedaie-web/internal/session"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[string]db.User

func (s stubUsers) GetUserByID(_ context.Context, id string) (db.User, error) {
	u, ok := s[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

// sessionCookies issues a session for userID and returns the resulting cookies.
func sessionCookies(t *testing.T, mgr *session.Manager, userID string) []*http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, mgr.CreateSession(c, userID))
	return rec.Result().Cookies()
}

func runLoadSession(t *testing.T, mgr *session.Manager, users UserLookup, cookies []*http.Cookie) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pos", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := LoadSession(mgr, users)(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))
	return c
}

func TestLoadSession_Authenticated(t *testing.T) {
	mgr := session.NewManager(testSecret, false)
	users := stubUsers{"u1": {ID: "u1", Name: "Mei Ling", Email: "mei@example.com", Role: "cashier"}}

	c := runLoadSession(t, mgr, users, sessionCookies(t, mgr, "u1"))

	assert.Equal(t, true, c.Get(IsAuthenticatedKey))
	user, ok := c.Get(DBUserKey).(*db.User)
	require.True(t, ok)
	assert.Equal(t, "Mei Ling", user.Name)
}

func TestLoadSession_NoCookie(t *testing.T) {
	mgr := session.NewManager(testSecret, false)

	c := runLoadSession(t, mgr, stubUsers{}, nil)

	assert.Equal(t, false, c.Get(IsAuthenticatedKey))
	assert.Nil(t, c.Get(DBUserKey))
}

func TestLoadSession_UnknownUser(t *testing.T) {
	mgr := session.NewManager(testSecret, false)

	c := runLoadSession(t, mgr, stubUsers{}, sessionCookies(t, mgr, "ghost"))

	assert.Equal(t, false, c.Get(IsAuthenticatedKey))
	assert.Nil(t, c.Get(DBUserKey))
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCSRF(t *testing.T) {
	e := echo.New()
	e.Use(CSRF(false))

	var issued string
	e.GET("/form", func(c echo.Context) error {
		issued, _ = c.Get(CSRFContextKey).(string)
		return c.NoContent(http.StatusOK)
	})
	e.POST("/form", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/api/pos/sale", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/form", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, issued)
	cookies := rec.Result().Cookies()

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/form", nil)
		req.Header.Set(CSRFHeader, issued)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/form", nil)
		req.Header.Set(CSRFHeader, "forged")
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("api routes skipped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pos/sale", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
