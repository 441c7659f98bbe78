package main

import (
	"github.com/dmitrymomot/mediakit/pkg/cookie"
	"github.com/dmitrymomot/mediakit/pkg/httpserver"
	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
	"github.com/dmitrymomot/mediakit/pkg/redis"
	"github.com/dmitrymomot/mediakit/pkg/session"
)

// Session store backends.
const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

// Config is the whole demo configuration, read from the environment.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`

	// SessionStore is memory or redis
	SessionStore string `env:"SESSION_STORE" envDefault:"memory"`

	// VersionsFile is an optional YAML registry replacing MEDIA_VERSIONS
	VersionsFile string `env:"MEDIA_VERSIONS_FILE" envDefault:""`

	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`

	HTTP    httpserver.Config
	Media   mediaversion.Config
	Cookie  cookie.Config
	Session session.Config
	Redis   redis.Config
}
