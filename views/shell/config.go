package shell

// API prefixes each client application talks to.
const (
	AffiliateAPIPrefix     = "/api/v1/affiliate"
	FunnelBuilderAPIPrefix = "/api/v1"
	POSAPIPrefix           = "/api/pos"
	POSDashboardPath       = "/dashboard"
)

// AffiliateConfig is assigned to window.affiliateConfig.
type AffiliateConfig struct {
	CSRFToken  string `json:"csrfToken"`
	APIBaseURL string `json:"apiBaseUrl"`
	AppURL     string `json:"appUrl"`
	AppName    string `json:"appName"`
}

// FunnelBuilderConfig is assigned to window.funnelBuilderConfig.
type FunnelBuilderConfig struct {
	CSRFToken  string             `json:"csrfToken"`
	APIBaseURL string             `json:"apiBaseUrl"`
	AppURL     string             `json:"appUrl"`
	User       *FunnelBuilderUser `json:"user"`
}

// FunnelBuilderUser is the identity subset exposed to the funnel builder.
type FunnelBuilderUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// POSConfig is assigned to window.posConfig.
type POSConfig struct {
	CSRFToken    string   `json:"csrfToken"`
	APIBaseURL   string   `json:"apiBaseUrl"`
	AppURL       string   `json:"appUrl"`
	DashboardURL string   `json:"dashboardUrl"`
	User         *POSUser `json:"user"`
}

// POSUser is the identity subset exposed to the point-of-sale app.
type POSUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewAffiliateConfig builds the affiliate portal configuration. The app
// name is fixed; the portal is always branded as the platform.
func NewAffiliateConfig(rc RenderContext) AffiliateConfig {
	return AffiliateConfig{
		CSRFToken:  rc.CSRFToken,
		APIBaseURL: rc.URL(AffiliateAPIPrefix),
		AppURL:     rc.AppURL(),
		AppName:    DefaultAppName,
	}
}

func NewFunnelBuilderConfig(rc RenderContext) FunnelBuilderConfig {
	cfg := FunnelBuilderConfig{
		CSRFToken:  rc.CSRFToken,
		APIBaseURL: rc.URL(FunnelBuilderAPIPrefix),
		AppURL:     rc.AppURL(),
	}
	if u := rc.User; u != nil {
		cfg.User = &FunnelBuilderUser{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return cfg
}

func NewPOSConfig(rc RenderContext) POSConfig {
	cfg := POSConfig{
		CSRFToken:    rc.CSRFToken,
		APIBaseURL:   rc.URL(POSAPIPrefix),
		AppURL:       rc.AppURL(),
		DashboardURL: rc.URL(POSDashboardPath),
	}
	if u := rc.User; u != nil {
		cfg.User = &POSUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	}
	return cfg
}
