package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Display DisplayConfig `mapstructure:"display"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds CoinGecko API settings
type APIConfig struct {
	// Key is the CoinGecko API key; the public API works without one.
	Key string `mapstructure:"key"`
	// BaseURL overrides the API root, e.g. for the pro API.
	BaseURL string `mapstructure:"base_url"`
	// FailSilently makes failed requests yield empty results instead of
	// errors.
	FailSilently bool `mapstructure:"fail_silently"`
}

// DisplayConfig contains output settings
type DisplayConfig struct {
	Currency string `mapstructure:"currency"`
	PerPage  int    `mapstructure:"per_page"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
