package auth

import (
	"github.com/bedaie/bedaie-web/views/shell"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// Site holds the deployment values every shell needs.
type Site struct {
	BaseURL   string
	AppName   string
	AssetsURL string
}

// Locales the client applications ship translations for.
var supportedLocales = []language.Tag{
	language.English,
	language.Malay,
	language.Indonesian,
	language.Chinese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// GetRenderContext builds the shell render context for the current request.
// It is the only place request and session state is read; the shells only
// see the returned value.
func GetRenderContext(c echo.Context, site Site) shell.RenderContext {
	rc := shell.RenderContext{
		Locale:    RequestLocale(c),
		CSRFToken: CSRFToken(c),
		BaseURL:   site.BaseURL,
		AppName:   site.AppName,
		AssetsURL: site.AssetsURL,
	}

	if IsAuthenticated(c) {
		if dbUser, ok := GetDBUser(c); ok {
			rc.User = &shell.User{
				ID:    dbUser.ID,
				Name:  dbUser.Name,
				Email: dbUser.Email,
				Role:  dbUser.Role,
			}
		}
	}

	return rc
}

// RequestLocale picks the best supported locale from the lang query
// parameter or the Accept-Language header, defaulting to English.
func RequestLocale(c echo.Context) string {
	var prefs []language.Tag
	if q := c.QueryParam("lang"); q != "" {
		if tag, err := language.Parse(q); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if header := c.Request().Header.Get("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
			prefs = append(prefs, tags...)
		}
	}
	if len(prefs) == 0 {
		return language.English.String()
	}

	_, index, _ := localeMatcher.Match(prefs...)
	base, _ := supportedLocales[index].Base()
	return base.String()
}
