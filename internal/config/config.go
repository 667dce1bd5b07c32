// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/MaRkS1234567/MySite-web/internal/errors"
	"github.com/MaRkS1234567/MySite-web/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Telegram contains bot relay settings
	Telegram TelegramConfig `json:"telegram"`

	// Pricing contains pricing-related settings
	Pricing PricingConfig `json:"pricing"`

	// GitHub contains the stats-widget settings
	GitHub GitHubConfig `json:"github"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// TemplatesGlob locates the page templates
	TemplatesGlob string `json:"templates_glob"`

	// StaticDir is served under /static
	StaticDir string `json:"static_dir"`
}

// TelegramConfig contains bot relay settings. The token and chat ID come
// from the process environment only, never from a config file or request.
type TelegramConfig struct {
	// Token is the bot token (env BOT_TOKEN)
	Token string `json:"-"`

	// ChatID is the destination chat (env CHAT_ID)
	ChatID string `json:"-"`

	// Endpoint is the bot API base URL
	Endpoint string `json:"endpoint"`

	// TimeoutSeconds bounds one send attempt
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Timeout returns the send timeout as a duration.
func (t TelegramConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// TablePath is an optional HCL rates file overriding the built-in table
	TablePath string `json:"table_path"`
}

// GitHubConfig contains the stats-widget settings
type GitHubConfig struct {
	// Username is the profile to aggregate
	Username string `json:"username"`

	// CacheTTLMinutes is how long stats stay fresh
	CacheTTLMinutes int `json:"cache_ttl_minutes"`
}

// CacheTTL returns the cache TTL as a duration.
func (g GitHubConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLMinutes) * time.Minute
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:          ":8080",
			TemplatesGlob: "templates/*.html",
			StaticDir:     "./static",
		},
		Telegram: TelegramConfig{
			Endpoint:       "https://api.telegram.org",
			TimeoutSeconds: 10,
		},
		Pricing: PricingConfig{},
		GitHub: GitHubConfig{
			Username:        "marksharapovDev",
			CacheTTLMinutes: 30,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, layering environment values on
// top. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	c.Telegram.Token = os.Getenv("BOT_TOKEN")
	c.Telegram.ChatID = os.Getenv("CHAT_ID")
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
}

// ValidateRelay checks that the bot credentials are present. Called only
// by the server entrypoint; the CLI does not need them.
func (c *Config) ValidateRelay() error {
	if c.Telegram.Token == "" || c.Telegram.ChatID == "" {
		return errors.Config("BOT_TOKEN and CHAT_ID must be set")
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
