package email

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func sampleContext(emailNumber int) *CartAbandonmentContext {
	return &CartAbandonmentContext{
		EmailNumber: emailNumber,
		Items: []CartItem{
			{Name: strPtr("Widget"), Price: floatPtr(19.5)},
			{},
		},
		Total:       "RM 19.50",
		RecoveryURL: "https://app.bedaie.test/cart/recover/tok-123",
		FunnelName:  "Raya Bundle Funnel",
	}
}

var framings = map[Tier]string{
	TierForgotSomething: "forget something",
	TierStillWaiting:    "still waiting",
	TierLastChance:      "last chance",
}

func TestTierForEmailNumber(t *testing.T) {
	tests := []struct {
		n    int
		want Tier
	}{
		{1, TierForgotSomething},
		{2, TierStillWaiting},
		{3, TierLastChance},
		{4, TierLastChance},
		{99, TierLastChance},
		{0, TierLastChance},
		{-1, TierLastChance},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, TierForEmailNumber(tt.n))
		})
	}
}

func TestRenderCartAbandonment_ExactlyOneFraming(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 99} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			rendered, err := RenderCartAbandonment(sampleContext(n))
			require.NoError(t, err)

			want := TierForEmailNumber(n)
			assert.Equal(t, want, rendered.Tier)

			for _, body := range []string{rendered.HTML, rendered.Text} {
				lower := strings.ToLower(body)
				for tier, phrase := range framings {
					if tier == want {
						assert.Contains(t, lower, phrase)
					} else {
						assert.NotContains(t, lower, phrase)
					}
				}
			}
		})
	}
}

func TestRenderCartAbandonment_StillWaitingMentionsSellingFast(t *testing.T) {
	rendered, err := RenderCartAbandonment(sampleContext(2))
	require.NoError(t, err)

	assert.Contains(t, rendered.Text, "selling fast")
	assert.Equal(t, "Your cart is still waiting", rendered.Subject)
}

func TestRenderCartAbandonment_ItemDefaults(t *testing.T) {
	rendered, err := RenderCartAbandonment(sampleContext(1))
	require.NoError(t, err)

	for _, body := range []string{rendered.HTML, rendered.Text} {
		assert.Contains(t, body, "Widget — RM 19.50")
		assert.Contains(t, body, "Product — RM 0.00")
	}
}

func TestRenderCartAbandonment_ItemOrderPreserved(t *testing.T) {
	data := sampleContext(1)
	data.Items = []CartItem{
		{Name: strPtr("Zebra Mug"), Price: floatPtr(12)},
		{Name: strPtr("Apple Tote"), Price: floatPtr(30.1)},
	}

	rendered, err := RenderCartAbandonment(data)
	require.NoError(t, err)

	first := strings.Index(rendered.Text, "Zebra Mug — RM 12.00")
	second := strings.Index(rendered.Text, "Apple Tote — RM 30.10")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestRenderCartAbandonment_EmptyItems(t *testing.T) {
	data := sampleContext(1)
	data.Items = nil
	data.Total = "RM 0.00"

	rendered, err := RenderCartAbandonment(data)
	require.NoError(t, err)

	assert.NotContains(t, rendered.Text, " — RM")
	assert.NotContains(t, rendered.HTML, " — RM")
	assert.Contains(t, rendered.Text, "Total: RM 0.00")
}

func TestRenderCartAbandonment_Expiry(t *testing.T) {
	data := sampleContext(2)
	data.AbandonmentAge = intPtr(10)

	rendered, err := RenderCartAbandonment(data)
	require.NoError(t, err)
	assert.Contains(t, rendered.Text, "62 hours")
	assert.Contains(t, rendered.HTML, "62 hours")

	data.AbandonmentAge = nil
	rendered, err = RenderCartAbandonment(data)
	require.NoError(t, err)
	assert.Contains(t, rendered.Text, "72 hours")
}

func TestHoursRemaining(t *testing.T) {
	assert.Equal(t, 72, HoursRemaining(nil))
	assert.Equal(t, 72, HoursRemaining(intPtr(0)))
	assert.Equal(t, 62, HoursRemaining(intPtr(10)))
	assert.Equal(t, 0, HoursRemaining(intPtr(72)))
	assert.Equal(t, 0, HoursRemaining(intPtr(100)))
}

func TestRenderCartAbandonment_LinksAndAttribution(t *testing.T) {
	data := sampleContext(3)
	data.CustomerName = "Farid"
	data.QRCodeURL = "https://app.bedaie.test/cart/recover/tok-123/qr.png"

	rendered, err := RenderCartAbandonment(data)
	require.NoError(t, err)

	assert.Contains(t, rendered.HTML, `href="https://app.bedaie.test/cart/recover/tok-123"`)
	assert.Contains(t, rendered.HTML, `src="https://app.bedaie.test/cart/recover/tok-123/qr.png"`)
	assert.Contains(t, rendered.HTML, "Sent by Raya Bundle Funnel")
	assert.Contains(t, rendered.Text, "Sent by Raya Bundle Funnel")
	assert.Contains(t, rendered.Text, "Hi Farid,")
	assert.Contains(t, rendered.Text, "Total: RM 19.50")
	assert.Contains(t, rendered.HTML, "<title>Last chance to complete your order</title>")
}

func TestRenderCartAbandonment_Idempotent(t *testing.T) {
	data := sampleContext(2)
	data.AbandonmentAge = intPtr(5)

	first, err := RenderCartAbandonment(data)
	require.NoError(t, err)
	second, err := RenderCartAbandonment(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderCartAbandonment_EscapesHTML(t *testing.T) {
	data := sampleContext(1)
	data.Items = []CartItem{{Name: strPtr("<b>Bold</b>"), Price: floatPtr(1)}}

	rendered, err := RenderCartAbandonment(data)
	require.NoError(t, err)

	assert.NotContains(t, rendered.HTML, "<b>Bold</b>")
	assert.Contains(t, rendered.HTML, "&lt;b&gt;Bold&lt;/b&gt;")
}
