package shell

import "github.com/a-h/templ"

const (
	POSMountID   = "pos-app"
	POSConfigVar = "posConfig"
)

// POS renders the point-of-sale shell.
func POS(rc RenderContext) templ.Component {
	return document{
		Lang:      rc.Lang(),
		Title:     "POS | " + rc.appName(),
		CSRFToken: rc.CSRFToken,
		BodyClass: "bg-slate-100 overflow-hidden select-none",
		MountID:   POSMountID,
		ConfigVar: POSConfigVar,
		Config:    NewPOSConfig(rc),
		Bundle:    rc.asset("pos/main.js"),
		Styles:    rc.asset("pos/main.css"),
	}
}
