package email

import (
	"net/url"
	"strings"
)

// RecoveryURL is the public link that restores an abandoned cart.
func RecoveryURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/cart/recover/" + url.PathEscape(token)
}

// RecoveryQRCodeURL points at the PNG QR code for the recovery link.
func RecoveryQRCodeURL(baseURL, token string) string {
	return RecoveryURL(baseURL, token) + "/qr.png"
}

// TrackingParam is the query parameter carrying the per-email tracking token.
const TrackingParam = "t"

// TrackedRecoveryURL is the recovery link for one specific email, so a click
// can be attributed to the email that produced it.
func TrackedRecoveryURL(baseURL, token, tracking string) string {
	if tracking == "" {
		return RecoveryURL(baseURL, token)
	}
	return RecoveryURL(baseURL, token) + "?" + url.Values{TrackingParam: {tracking}}.Encode()
}
