package session

import "time"

// Config is the environment form of a Manager.
type Config struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// IdleTimeout is the session lifetime after its last save
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"24h"`

	// MaxLifetime caps the lifetime from creation, 0 means no cap
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"720h"`

	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	SecureCookies   bool          `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		IdleTimeout:     24 * time.Hour,
		MaxLifetime:     30 * 24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}

// NewFromConfig is New with cfg applied before opts.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
