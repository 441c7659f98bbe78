package session

import (
	"time"

	"github.com/dmitrymomot/mediakit/pkg/cookie"
)

// Option configures a Manager.
type Option func(*Manager)

// WithStore replaces the default MemoryStore.
func WithStore(s Store) Option {
	return func(m *Manager) { m.store = s }
}

// WithTransport replaces the cookie transport; no cookie manager is needed then.
func WithTransport(t Transport) Option {
	return func(m *Manager) { m.transport = t }
}

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

func WithCookieName(name string) Option {
	return func(m *Manager) { m.config.CookieName = name }
}

// WithCleanupInterval sets the purge period of the default MemoryStore.
func WithCleanupInterval(d time.Duration) Option {
	return func(m *Manager) { m.config.CleanupInterval = d }
}

// WithCookieManager signs the session cookie with cookies. opts override the
// session cookie attributes.
func WithCookieManager(cookies *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookies = cookies
		m.cookieOpts = opts
	}
}
