package configs

import "time"

// Facebook configures the Graph API client. Access tokens and account
// IDs are never configured here; they arrive with each upload request.
type Facebook struct {
	// BaseURL is the Graph API host.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	// APIVersion is the Graph API version segment, e.g. v23.0.
	APIVersion string `env:"API_VERSION" envDefault:"v23.0"`
	// Timeout bounds each remote round-trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// StrictPostCheck aborts a campaign when the target post is
	// confirmed missing from the page's recent posts. In the default
	// lenient mode an unverifiable post only logs a warning.
	StrictPostCheck bool `env:"STRICT_POST_CHECK" envDefault:"false"`
}
