package recovery

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Render(t *testing.T) {
	var buf bytes.Buffer
	err := Page{
		Lang:       "ms",
		AppName:    "BeDaie",
		FunnelName: "Raya <Sale>",
		Action:     "/cart/recover/abc",
		CSRFField:  "_token",
		CSRFToken:  "csrf-1",
		Tracking:   "trk-1",
		ItemCount:  2,
	}.Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `<html lang="ms">`)
	assert.Contains(t, html, "Raya &lt;Sale&gt;")
	assert.Contains(t, html, "2 items saved for you.")
	assert.Contains(t, html, `<form method="post" action="/cart/recover/abc"`)
	assert.Contains(t, html, `<input type="hidden" name="_token" value="csrf-1">`)
	assert.Contains(t, html, `<input type="hidden" name="t" value="trk-1">`)
	assert.Contains(t, html, `<meta name="robots" content="noindex">`)
}

func TestPage_WithoutTracking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page{Action: "/cart/recover/abc", CSRFField: "_token", ItemCount: 1}.Render(context.Background(), &buf))

	html := buf.String()
	assert.NotContains(t, html, `name="t"`)
	assert.Contains(t, html, "1 item saved for you.")
}
