package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bedaie/bedaie-web/internal/auth"
	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/bedaie/bedaie-web/internal/middleware"
	"github.com/bedaie/bedaie-web/storage"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/bedaie/bedaie-web/views/recovery"
	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
)

// QRCodeSize is the edge length in pixels of recovery QR codes.
const QRCodeSize = 256

type RecoveryHandler struct {
	storage *storage.Storage
	site    auth.Site
}

func NewRecoveryHandler(storage *storage.Storage, site auth.Site) *RecoveryHandler {
	site.BaseURL = strings.TrimRight(site.BaseURL, "/")
	return &RecoveryHandler{
		storage: storage,
		site:    site,
	}
}

func (h *RecoveryHandler) cartForToken(c echo.Context) (db.Cart, error) {
	token := c.Param("token")
	if token == "" {
		return db.Cart{}, echo.NewHTTPError(http.StatusNotFound, "Cart not found")
	}

	cart, err := h.storage.Queries.GetCartByRecoveryToken(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Cart{}, echo.NewHTTPError(http.StatusNotFound, "Cart not found")
		}
		slog.Error("failed to look up cart by recovery token", "error", err)
		return db.Cart{}, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}
	return cart, nil
}

// HandleRecoverCart shows the confirmation page for a recovery link. It
// changes nothing, since mail scanners prefetch links in messages.
func (h *RecoveryHandler) HandleRecoverCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartForToken(c)
	if err != nil {
		return err
	}

	funnel, err := h.storage.Queries.GetFunnelByID(ctx, cart.FunnelID)
	if err != nil {
		slog.Error("failed to load funnel for recovery link", "error", err, "cart_id", cart.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}

	if cart.Status == db.CartStatusRecovered {
		return c.Redirect(http.StatusFound, h.checkoutURL(funnel, cart))
	}

	items, err := h.storage.Queries.ListCartItems(ctx, cart.ID)
	if err != nil {
		slog.Error("failed to load cart items for recovery link", "error", err, "cart_id", cart.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}

	return Render(c, recovery.Page{
		Lang:       auth.RequestLocale(c),
		AppName:    h.site.AppName,
		FunnelName: funnel.Name,
		Action:     "/cart/recover/" + url.PathEscape(cart.RecoveryToken),
		CSRFField:  middleware.CSRFFormField,
		CSRFToken:  auth.CSRFToken(c),
		Tracking:   c.QueryParam(email.TrackingParam),
		ItemCount:  len(items),
	})
}

// HandleConfirmRecovery marks the cart recovered, attributes the click to the
// email it came from and sends the shopper back to the funnel checkout.
func (h *RecoveryHandler) HandleConfirmRecovery(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartForToken(c)
	if err != nil {
		return err
	}

	funnel, err := h.storage.Queries.GetFunnelByID(ctx, cart.FunnelID)
	if err != nil {
		slog.Error("failed to load funnel for recovered cart", "error", err, "cart_id", cart.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}

	now := time.Now().UTC()
	updated, err := h.storage.Queries.MarkCartRecovered(ctx, db.MarkCartRecoveredParams{
		RecoveredAt: now,
		ID:          cart.ID,
	})
	if err != nil {
		slog.Error("failed to mark cart as recovered", "error", err, "cart_id", cart.ID)
	} else if updated > 0 {
		slog.Info("cart recovered via email", "cart_id", cart.ID, "previous_status", cart.Status)
	}

	if tracking := c.FormValue(email.TrackingParam); tracking != "" {
		clicked, err := h.storage.Queries.MarkRecoveryEmailClicked(ctx, db.MarkRecoveryEmailClickedParams{
			ClickedAt:     now,
			TrackingToken: tracking,
			CartID:        cart.ID,
		})
		if err != nil {
			slog.Error("failed to record recovery email click", "error", err, "cart_id", cart.ID)
		} else if clicked > 0 {
			slog.Debug("recovery email click recorded", "cart_id", cart.ID)
		}
	}

	return c.Redirect(http.StatusSeeOther, h.checkoutURL(funnel, cart))
}

func (h *RecoveryHandler) checkoutURL(funnel db.Funnel, cart db.Cart) string {
	return h.site.BaseURL + "/f/" + url.PathEscape(funnel.Slug) + "?cart=" + url.QueryEscape(cart.ID)
}

// HandleRecoveryQRCode renders the recovery link as a PNG QR code
func (h *RecoveryHandler) HandleRecoveryQRCode(c echo.Context) error {
	cart, err := h.cartForToken(c)
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(email.RecoveryURL(h.site.BaseURL, cart.RecoveryToken), qrcode.Medium, QRCodeSize)
	if err != nil {
		slog.Error("failed to encode recovery QR code", "error", err, "cart_id", cart.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render QR code")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", png)
}
