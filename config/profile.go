package config

import "strings"

// ProfileConfig configures the external profile directory used to resolve
// a buyer's location and profile photo. BaseURL absent is a recoverable,
// user-visible configuration error: order placement fails fast without
// issuing any request.
type ProfileConfig struct {
	// BaseURL is the profile API base address (e.g., "https://graph.example.com/v1").
	BaseURL string `env:"API_URL"`

	// LocationExpr and PhotoExpr are JMESPath expressions applied to the
	// profile payload to extract the respective fields. Defaults match the
	// bundled directory schema.
	LocationExpr string `env:"LOCATION_EXPR" envDefault:"location"`
	PhotoExpr    string `env:"PHOTO_EXPR"    envDefault:"photo_url"`

	// DefaultLocation is used when the payload carries no location.
	DefaultLocation string `env:"DEFAULT_LOCATION" envDefault:"Chennai"`
}

// Sanitize trims trailing slashes so request paths join cleanly.
func (p *ProfileConfig) Sanitize() {
	p.BaseURL = strings.TrimRight(strings.TrimSpace(p.BaseURL), "/")
}
