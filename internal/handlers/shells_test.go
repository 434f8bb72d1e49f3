package handlers

import (
	"net/http"
	"testing"

	"github.com/bedaie/bedaie-web/internal/auth"
	"github.com/bedaie/bedaie-web/internal/middleware"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSite = auth.Site{BaseURL: "https://app.bedaie.test", AppName: "BeDaie"}

func TestShellHandler_Affiliate(t *testing.T) {
	h := NewShellHandler(testSite)
	c, rec := NewTestContext(http.MethodGet, "/affiliate")
	c.Set(middleware.CSRFContextKey, "tok-affiliate")

	require.NoError(t, h.HandleAffiliate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="affiliate-app"></div>`)
	assert.Contains(t, body, "window.affiliateConfig = ")
	assert.Contains(t, body, `"csrfToken":"tok-affiliate"`)
	assert.Contains(t, body, `"apiBaseUrl":"https://app.bedaie.test/api/v1/affiliate"`)
}

func TestShellHandler_FunnelBuilder(t *testing.T) {
	h := NewShellHandler(testSite)

	t.Run("anonymous", func(t *testing.T) {
		c, rec := NewTestContext(http.MethodGet, "/funnels/builder")
		require.NoError(t, h.HandleFunnelBuilder(c))

		body := rec.Body.String()
		assert.Contains(t, body, "<title>BeDaie</title>")
		assert.Contains(t, body, `"user":null`)
	})

	t.Run("signed in with title", func(t *testing.T) {
		c, rec := NewTestContext(http.MethodGet, "/funnels/builder?title=Raya+Sale")
		SetTestUser(c, &db.User{ID: "u1", Name: "Siti", Email: "siti@example.com", Role: auth.RoleStaff})
		require.NoError(t, h.HandleFunnelBuilder(c))

		body := rec.Body.String()
		assert.Contains(t, body, "<title>Raya Sale</title>")
		assert.Contains(t, body, `"user":{"id":"u1","name":"Siti","email":"siti@example.com"}`)
	})
}

func TestShellHandler_POS(t *testing.T) {
	h := NewShellHandler(testSite)
	c, rec := NewTestContext(http.MethodGet, "/pos")
	SetTestUser(c, &db.User{ID: "u2", Name: "Hafiz", Email: "hafiz@example.com", Role: auth.RoleCashier})

	require.NoError(t, h.HandlePOS(c))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>POS | BeDaie</title>")
	assert.Contains(t, body, "window.posConfig = ")
	assert.Contains(t, body, `"role":"cashier"`)
	assert.Contains(t, body, `"dashboardUrl":"https://app.bedaie.test/dashboard"`)
}
