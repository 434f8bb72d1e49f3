package shell

import "github.com/a-h/templ"

const (
	AffiliateMountID   = "affiliate-app"
	AffiliateConfigVar = "affiliateConfig"
)

// Affiliate renders the affiliate portal shell.
func Affiliate(rc RenderContext) templ.Component {
	return document{
		Lang:      rc.Lang(),
		Title:     DefaultAppName + " Affiliate Portal",
		CSRFToken: rc.CSRFToken,
		MountID:   AffiliateMountID,
		ConfigVar: AffiliateConfigVar,
		Config:    NewAffiliateConfig(rc),
		Bundle:    rc.asset("affiliate/main.js"),
		Styles:    rc.asset("affiliate/main.css"),
	}
}
