package shell

import "github.com/a-h/templ"

const (
	FunnelBuilderMountID   = "funnel-builder-app"
	FunnelBuilderConfigVar = "funnelBuilderConfig"
)

// FunnelBuilder renders the funnel builder shell. An empty title falls back
// to the configured application name.
func FunnelBuilder(rc RenderContext, title string) templ.Component {
	if title == "" {
		title = rc.appName()
	}
	return document{
		Lang:      rc.Lang(),
		Title:     title,
		CSRFToken: rc.CSRFToken,
		BodyClass: "bg-white overflow-hidden",
		MountID:   FunnelBuilderMountID,
		ConfigVar: FunnelBuilderConfigVar,
		Config:    NewFunnelBuilderConfig(rc),
		Bundle:    rc.asset("funnel-builder/main.js"),
		Styles:    rc.asset("funnel-builder/main.css"),
	}
}
