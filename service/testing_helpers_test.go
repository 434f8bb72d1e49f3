package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/bedaie/bedaie-web/internal/middleware"
	"github.com/bedaie/bedaie-web/storage"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "test-session-secret-0123456789abcdef"

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	database, _, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	config := &Config{
		Environment:   "test",
		Port:          "8080",
		BaseURL:       "https://app.bedaie.test",
		AppName:       "BeDaie",
		SessionSecret: testSessionSecret,
	}

	return NewWithSender(storage.NewFromDB(database), config, email.LogSender{})
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// createTestUser creates a user with the given role
func createTestUser(t *testing.T, queries *db.Queries, email, role string) *db.User {
	t.Helper()

	user, err := queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:        ulid.Make().String(),
		Name:      "Test User",
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	return &user
}

// loginCookies issues a session cookie for user
func loginCookies(t *testing.T, svc *Service, user *db.User) []*http.Cookie {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, svc.sessions.CreateSession(c, user.ID))

	return rec.Result().Cookies()
}

func doGet(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doPostForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// csrfCookie returns the CSRF cookie issued with rec
func csrfCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CSRFCookieName {
			return ck
		}
	}
	require.FailNow(t, "response carries no CSRF cookie")
	return nil
}
