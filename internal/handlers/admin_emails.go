package handlers

import (
	"net/http"
	"strconv"

	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/bedaie/bedaie-web/views/helpers"
	"github.com/labstack/echo/v4"
)

type AdminEmailsHandler struct {
	baseURL string
}

func NewAdminEmailsHandler(baseURL string) *AdminEmailsHandler {
	return &AdminEmailsHandler{baseURL: baseURL}
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }

// previewCartContext is sample data for the admin preview. The second item
// has no name or price so the fallbacks are visible.
func (h *AdminEmailsHandler) previewCartContext(emailNumber int) *email.CartAbandonmentContext {
	items := []email.CartItem{
		{Name: strPtr("Kurung Moden Satin"), Price: floatPtr(129.90)},
		{},
		{Name: strPtr("Tudung Bawal Premium"), Price: floatPtr(35)},
	}
	token := "preview"

	return &email.CartAbandonmentContext{
		EmailNumber:    emailNumber,
		Items:          items,
		Total:          helpers.FormatRinggit(164.90),
		RecoveryURL:    email.RecoveryURL(h.baseURL, token),
		FunnelName:     "Raya Collection",
		AbandonmentAge: intPtr(previewAge(emailNumber)),
		CustomerName:   "Nur Aisyah",
	}
}

func previewAge(emailNumber int) int {
	switch email.TierForEmailNumber(emailNumber) {
	case email.TierForgotSomething:
		return 1
	case email.TierStillWaiting:
		return 24
	default:
		return 48
	}
}

// HandleCartAbandonmentPreview renders one email of the sequence with sample
// data. format=text shows the plain-text alternative.
func (h *AdminEmailsHandler) HandleCartAbandonmentPreview(c echo.Context) error {
	emailNumber := 1
	if raw := c.QueryParam("email_number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "email_number must be an integer")
		}
		emailNumber = n
	}

	rendered, err := email.RenderCartAbandonment(h.previewCartContext(emailNumber))
	if err != nil {
		return err
	}

	c.Response().Header().Set("X-Email-Subject", rendered.Subject)
	if c.QueryParam("format") == "text" {
		return c.String(http.StatusOK, rendered.Text)
	}
	return c.HTML(http.StatusOK, rendered.HTML)
}
