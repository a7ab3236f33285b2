package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bookctl", "config.yml")
}

// Load reads the config from disk and the environment. A missing config
// file yields the defaults — everything works against the public host
// out of the box.
func Load(path string) (*Config, error) {
	// A .env next to the working directory can override the host, handy
	// when pointing at a local catalog service.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("api.base_url", "https://db-book.vercel.app")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("defaults.page_size", 21)
	v.SetDefault("display.dark", false)
	v.SetDefault("session.cookie_file", defaultCookieFile())

	v.SetEnvPrefix("BOOKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("BOOKCTL_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine; the defaults stand.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Session.CookieFile = ExpandHome(cfg.Session.CookieFile)
	return &cfg, nil
}

// Save writes the config to the default path. Used to persist the
// display preference toggled from the TUI.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// TimeoutDuration parses the configured request timeout. Unparseable
// values fall back to no timeout.
func (c *Config) TimeoutDuration() time.Duration {
	if c.API.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultCookieFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "bookctl", "session.json")
}
