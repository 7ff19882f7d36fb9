package moxfield

// Config holds configuration for the Moxfield API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api2.moxfield.com"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PageSize is the number of binder entries requested per page.
	PageSize int `mapstructure:"page_size" default:"100"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"mtg-utils/1.0"`
}
