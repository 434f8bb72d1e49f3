package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryURL(t *testing.T) {
	assert.Equal(t, "https://bedaie.com/cart/recover/abc", RecoveryURL("https://bedaie.com/", "abc"))
	assert.Equal(t, "https://bedaie.com/cart/recover/a%2Fb", RecoveryURL("https://bedaie.com", "a/b"))
	assert.Equal(t, "https://bedaie.com/cart/recover/abc/qr.png", RecoveryQRCodeURL("https://bedaie.com", "abc"))
}

func TestTrackedRecoveryURL(t *testing.T) {
	assert.Equal(t, "https://bedaie.com/cart/recover/abc?t=e1", TrackedRecoveryURL("https://bedaie.com/", "abc", "e1"))
	assert.Equal(t, "https://bedaie.com/cart/recover/abc?t=a+b%26c", TrackedRecoveryURL("https://bedaie.com", "abc", "a b&c"))
	assert.Equal(t, "https://bedaie.com/cart/recover/abc", TrackedRecoveryURL("https://bedaie.com", "abc", ""))
}
