package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const baseBodyClass = "min-h-screen bg-gray-50 font-sans text-gray-900 antialiased"

// document describes one SPA shell page.
type document struct {
	Lang      string
	Title     string
	CSRFToken string
	BodyClass string
	MountID   string
	ConfigVar string
	Config    any
	Bundle    string
	Styles    string
}

func (d document) Render(ctx context.Context, w io.Writer) error {
	configJSON, err := templ.JSONString(d.Config)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.ConfigVar, err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n", templ.EscapeString(d.Lang))
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<meta name=\"csrf-token\" content=\"%s\">\n", templ.EscapeString(d.CSRFToken))
	fmt.Fprintf(&b, "<title>%s</title>\n", templ.EscapeString(d.Title))
	if d.Styles != "" {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", templ.EscapeString(d.Styles))
	}
	b.WriteString("</head>\n")
	fmt.Fprintf(&b, "<body class=\"%s\">\n", templ.EscapeString(twmerge.Merge(baseBodyClass, d.BodyClass)))
	fmt.Fprintf(&b, "<div id=\"%s\"></div>\n", templ.EscapeString(d.MountID))
	fmt.Fprintf(&b, "<script>window.%s = %s;</script>\n", d.ConfigVar, configJSON)
	fmt.Fprintf(&b, "<script type=\"module\" src=\"%s\"></script>\n", templ.EscapeString(d.Bundle))
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	_, err = io.WriteString(w, b.String())
	return err
}

var _ templ.Component = document{}
