package mediaversion

import "time"

// Mode selects how the version is spelled in URLs.
type Mode string

const (
	// ModePath embeds the version token as the leading path segment: /m/products.
	ModePath Mode = "path"
	// ModeQuery carries the version in a query parameter: /products?media_version=mobile.
	ModeQuery Mode = "query"
)

// TrailingSlash is the policy applied to the site root when a prefix is added.
type TrailingSlash string

const (
	// TrailingSlashRemove renders the prefixed root as /m.
	TrailingSlashRemove TrailingSlash = "remove"
	// TrailingSlashKeep renders the prefixed root as /m/.
	TrailingSlashKeep TrailingSlash = "keep"
)

// Default parameter names
const (
	DefaultVersionParam = "media_version"
	DefaultSwitchParam  = "switch_media_version"
)

// Config holds resolver configuration. It is read once by NewResolver.
type Config struct {
	// Versions is an ordered key=token list, ignored when WithRegistry is used
	Versions string `env:"MEDIA_VERSIONS" envDefault:"mobile=m,tablet=t,full="`

	Mode          Mode          `env:"MEDIA_URL_MODE" envDefault:"path"`
	TrailingSlash TrailingSlash `env:"MEDIA_TRAILING_SLASH" envDefault:"remove"`

	// StrictSessionMode makes the session version win over the URL version
	StrictSessionMode bool `env:"MEDIA_STRICT_SESSION" envDefault:"false"`

	// SessionTTL is the lifetime of the stored version, reset on every write
	SessionTTL time.Duration `env:"MEDIA_SESSION_TTL" envDefault:"24h"`

	// RouteGetRequestsOnly limits version switching and detection to GET requests
	RouteGetRequestsOnly bool `env:"MEDIA_GET_ONLY" envDefault:"true"`

	SwitchParam  string `env:"MEDIA_SWITCH_PARAM" envDefault:"switch_media_version"`
	VersionParam string `env:"MEDIA_VERSION_PARAM" envDefault:"media_version"`

	// AbsoluteURLs prefixes generated URLs with scheme and host
	AbsoluteURLs bool `env:"MEDIA_ABSOLUTE_URLS" envDefault:"false"`

	// BasePath is the application mount point, e.g. "/app"
	BasePath string `env:"MEDIA_BASE_PATH" envDefault:""`

	ClassifierTimeout time.Duration `env:"MEDIA_CLASSIFIER_TIMEOUT" envDefault:"50ms"`

	// ClassifierCacheSize caps the user-agent classification cache, 0 disables it
	ClassifierCacheSize int `env:"MEDIA_CLASSIFIER_CACHE" envDefault:"0"`

	// QueryDefaults lists query params dropped from query-mode redirects when
	// they hold the given value, e.g. controller=index,action=index
	QueryDefaults map[string]string `env:"MEDIA_QUERY_DEFAULTS" envKeyValSeparator:"="`

	// SkipPaths are path prefixes excluded from resolution (assets, admin, health checks)
	SkipPaths []string `env:"MEDIA_SKIP_PATHS" envSeparator:","`
}

// DefaultConfig returns default resolver configuration
func DefaultConfig() Config {
	return Config{
		Versions:             "mobile=m,tablet=t,full=",
		Mode:                 ModePath,
		TrailingSlash:        TrailingSlashRemove,
		StrictSessionMode:    false,
		SessionTTL:           24 * time.Hour,
		RouteGetRequestsOnly: true,
		SwitchParam:          DefaultSwitchParam,
		VersionParam:         DefaultVersionParam,
		ClassifierTimeout:    50 * time.Millisecond,
	}
}

// withDefaults fills zero values that would make the resolver unusable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.TrailingSlash == "" {
		c.TrailingSlash = d.TrailingSlash
	}
	if c.SwitchParam == "" {
		c.SwitchParam = d.SwitchParam
	}
	if c.VersionParam == "" {
		c.VersionParam = d.VersionParam
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = d.SessionTTL
	}
	if c.ClassifierTimeout <= 0 {
		c.ClassifierTimeout = d.ClassifierTimeout
	}
	return c
}
