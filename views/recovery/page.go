package recovery

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Page is the confirmation page behind a recovery link. The cart is only
// restored when the form is submitted, so link scanners that fetch the URL
// leave it untouched.
type Page struct {
	Lang       string
	AppName    string
	FunnelName string
	Action     string
	CSRFField  string
	CSRFToken  string
	Tracking   string
	ItemCount  int
}

func (p Page) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n", templ.EscapeString(p.Lang))
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<meta name=\"robots\" content=\"noindex\">\n")
	fmt.Fprintf(&b, "<title>Your cart | %s</title>\n", templ.EscapeString(p.AppName))
	b.WriteString("</head>\n")
	b.WriteString("<body class=\"min-h-screen bg-gray-50 font-sans text-gray-900 antialiased\">\n")
	b.WriteString("<main class=\"mx-auto max-w-md p-8 text-center\">\n")
	fmt.Fprintf(&b, "<h1 class=\"text-2xl font-semibold\">Your cart from %s is waiting</h1>\n", templ.EscapeString(p.FunnelName))
	if p.ItemCount > 0 {
		fmt.Fprintf(&b, "<p class=\"mt-2 text-gray-600\">%d item%s saved for you.</p>\n", p.ItemCount, plural(p.ItemCount))
	}
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" class=\"mt-6\">\n", templ.EscapeString(p.Action))
	fmt.Fprintf(&b, "<input type=\"hidden\" name=\"%s\" value=\"%s\">\n", templ.EscapeString(p.CSRFField), templ.EscapeString(p.CSRFToken))
	if p.Tracking != "" {
		fmt.Fprintf(&b, "<input type=\"hidden\" name=\"t\" value=\"%s\">\n", templ.EscapeString(p.Tracking))
	}
	b.WriteString("<button type=\"submit\" class=\"rounded-md bg-teal-700 px-8 py-3 font-semibold text-white\">Continue to your cart</button>\n")
	b.WriteString("</form>\n")
	b.WriteString("</main>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

var _ templ.Component = Page{}
