package config

// Config is the top-level bookctl configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api" yaml:"api"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Session  SessionConfig  `mapstructure:"session" yaml:"session"`
}

// APIConfig holds catalog service connection settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Timeout is a Go duration string; empty or "0s" leaves requests
	// unbounded, like the browser client.
	Timeout string `mapstructure:"timeout" yaml:"timeout,omitempty"`
}

// DefaultsConfig holds default values for list views.
type DefaultsConfig struct {
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
}

// DisplayConfig holds the persisted display preference.
type DisplayConfig struct {
	Dark bool `mapstructure:"dark" yaml:"dark"`
}

// SessionConfig holds the client-side session persistence settings.
type SessionConfig struct {
	CookieFile string `mapstructure:"cookie_file" yaml:"cookie_file"`
}
