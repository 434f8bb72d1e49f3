// Package shell renders the server-side HTML documents that mount the
// affiliate, funnel builder and point-of-sale single-page applications.
//
// Every renderer is a pure function of the RenderContext it is given; the
// request boundary (see internal/auth) is responsible for building that
// context from the session.
package shell

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultAppName is used when the configured application name is empty.
const DefaultAppName = "BeDaie"

// RenderContext carries the per-request values a shell needs.
type RenderContext struct {
	Locale    string
	CSRFToken string
	BaseURL   string
	AppName   string
	AssetsURL string
	User      *User
}

// User is the authenticated identity. It never holds credentials.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// AppURL returns the base URL without a trailing slash.
func (rc RenderContext) AppURL() string {
	return strings.TrimRight(rc.BaseURL, "/")
}

// URL joins path onto the base URL.
func (rc RenderContext) URL(path string) string {
	if path == "" {
		return rc.AppURL()
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return rc.AppURL() + path
}

// Lang returns the BCP 47 form of the locale, "en" when it cannot be parsed.
func (rc RenderContext) Lang() string {
	return NormalizeLocale(rc.Locale)
}

func (rc RenderContext) appName() string {
	if rc.AppName != "" {
		return rc.AppName
	}
	return DefaultAppName
}

func (rc RenderContext) asset(path string) string {
	base := strings.TrimRight(rc.AssetsURL, "/")
	if base == "" {
		base = rc.URL("/build")
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// NormalizeLocale converts values like "en_US" or "MS" into canonical tags.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return language.English.String()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English.String()
	}
	return tag.String()
}
