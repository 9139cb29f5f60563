package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"5000"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	SiteName string `env:"SITE_NAME" envDefault:"VoiceInvoice"`

	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// Empty allows every host.
	AllowedHosts     []string `env:"ALLOWED_HOSTS" envSeparator:","`
	ContactRateLimit float64  `env:"CONTACT_RATE_LIMIT" envDefault:"10"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCookie   string        `env:"SESSION_COOKIE" envDefault:"contact_session"`
	AuthCookie      string        `env:"AUTH_COOKIE" envDefault:"__session"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE" envDefault:"@every 10m"`
}

// Load reads envFile into the environment when it exists and parses Config.
// The returned bool reports whether the file was loaded.
func Load(envFile string) (*Config, bool, error) {
	loaded := false
	if envFile != "" {
		loaded = godotenv.Load(envFile) == nil
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, loaded, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, loaded, err
	}
	return cfg, loaded, nil
}

func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.ContactRateLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// InvoiceToolURL is the backend route that sends visitors to the invoice tool.
func (c *Config) InvoiceToolURL() string {
	return strings.TrimRight(c.BackendURL, "/") + "/invoice_tool"
}
