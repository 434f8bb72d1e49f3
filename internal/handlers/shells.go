package handlers

import (
	"github.com/bedaie/bedaie-web/internal/auth"
	"github.com/bedaie/bedaie-web/views/shell"
	"github.com/labstack/echo/v4"
)

// ShellHandler serves the HTML documents the client applications boot from.
// Everything after the mount path is routed client-side.
type ShellHandler struct {
	site auth.Site
}

func NewShellHandler(site auth.Site) *ShellHandler {
	return &ShellHandler{site: site}
}

// HandleAffiliate serves the affiliate portal
func (h *ShellHandler) HandleAffiliate(c echo.Context) error {
	return Render(c, shell.Affiliate(auth.GetRenderContext(c, h.site)))
}

// HandleFunnelBuilder serves the funnel builder. An optional title query
// parameter names the funnel being edited.
func (h *ShellHandler) HandleFunnelBuilder(c echo.Context) error {
	return Render(c, shell.FunnelBuilder(auth.GetRenderContext(c, h.site), c.QueryParam("title")))
}

// HandlePOS serves the point of sale
func (h *ShellHandler) HandlePOS(c echo.Context) error {
	return Render(c, shell.POS(auth.GetRenderContext(c, h.site)))
}
