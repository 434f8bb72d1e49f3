package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/bedaie/bedaie-web/internal/auth"
	"github.com/bedaie/bedaie-web/storage"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

// SetTestUser sets a user in the Echo context for authenticated tests
func SetTestUser(c echo.Context, user *db.User) {
	c.Set(auth.DBUserKey, user)
	c.Set(auth.IsAuthenticatedKey, true)
}

// CreateTestUser creates a test user with the given role
func CreateTestUser(queries *db.Queries, email, role string) (*db.User, error) {
	user, err := queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:        ulid.Make().String(),
		Name:      "Test User",
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	})
	return &user, err
}

// CreateTestCart creates a funnel and an abandoned cart in it
func CreateTestCart(queries *db.Queries, slug string) (db.Funnel, db.Cart, error) {
	ctx := context.Background()
	now := time.Now().UTC()

	funnel, err := queries.CreateFunnel(ctx, db.CreateFunnelParams{
		ID:        ulid.Make().String(),
		Name:      "Test Funnel",
		Slug:      slug,
		CreatedAt: now,
	})
	if err != nil {
		return db.Funnel{}, db.Cart{}, err
	}

	cart, err := queries.CreateCart(ctx, db.CreateCartParams{
		ID:            ulid.Make().String(),
		FunnelID:      funnel.ID,
		CustomerEmail: sql.NullString{String: "shopper@example.com", Valid: true},
		Status:        db.CartStatusActive,
		RecoveryToken: uuid.NewString(),
		CreatedAt:     now.Add(-2 * time.Hour),
		UpdatedAt:     now.Add(-2 * time.Hour),
	})
	if err != nil {
		return db.Funnel{}, db.Cart{}, err
	}

	_, err = queries.MarkCartAbandoned(ctx, db.MarkCartAbandonedParams{
		AbandonedAt: now.Add(-90 * time.Minute),
		ID:          cart.ID,
	})
	if err != nil {
		return db.Funnel{}, db.Cart{}, err
	}

	cart, err = queries.GetCartByID(ctx, cart.ID)
	return funnel, cart, err
}

// NewTestStorage creates a migrated in-memory storage
func NewTestStorage() (*storage.Storage, func()) {
	database, _, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return storage.NewFromDB(database), cleanup
}

// serve runs handler for a request routed through path on a fresh Echo
// instance so path params and the HTTP error handler behave as in production.
func serve(path, target string, handler echo.HandlerFunc, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET(path, handler, mw...)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// serveForm posts form to target routed through path.
func serveForm(path, target string, form url.Values, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST(path, handler)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
