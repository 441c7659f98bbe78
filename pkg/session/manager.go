package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/mediakit/pkg/cookie"
)

// Store persists sessions by token. Get reports ErrSessionNotFound and
// ErrSessionExpired; Update reports ErrSessionNotFound for unknown tokens.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
}

// Manager creates, loads and saves sessions through a Store and a Transport.
type Manager struct {
	store      Store
	transport  Transport
	config     Config
	cookies    *cookie.Manager
	cookieOpts []cookie.Option
}

// New builds a Manager. Without WithTransport a cookie manager is required
// and New panics if none is given.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.transport == nil {
		if m.cookies == nil {
			panic("session: cookie manager is required without a custom transport")
		}
		m.transport = CookieTransport(m.cookies, m.config.CookieName, m.config.SecureCookies, m.cookieOpts...)
	}

	return m
}

// Get retrieves an existing session. A session already attached to the
// request context by Middleware is returned without a store round trip.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	if s, ok := FromContext(r.Context()); ok && !s.IsExpired() {
		return s, nil
	}

	token, err := m.transport.Token(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Ensure returns the current session or creates a new one.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	session, err := m.Get(ctx, r)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) && !errors.Is(err, ErrCorruptedSession) {
		return nil, err
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session = NewSession(token, m.config.IdleTimeout)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.Issue(w, session.Token, m.config.IdleTimeout); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}

	return session, nil
}

// Save persists session changes, slides its expiry forward and refreshes the
// client token so both expire together.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	now := time.Now()
	session.ExpiresAt = m.calculateExpiry(session, now)
	session.Touch()

	if err := m.store.Update(ctx, session); err != nil {
		return err
	}

	return m.transport.Issue(w, session.Token, session.ExpiresAt.Sub(now))
}

// Destroy deletes the session
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.Token(r)
	if err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}

	return m.transport.Revoke(w)
}

// Namespace returns a handle to a named part of the session whose values
// expire ttl after their last write.
func (m *Manager) Namespace(name string, ttl time.Duration) *Namespace {
	if name == "" {
		panic(ErrEmptyNamespace)
	}
	return &Namespace{manager: m, name: name, ttl: ttl}
}

// Close releases store resources when the store supports it.
func (m *Manager) Close() error {
	if c, ok := m.store.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// calculateExpiry returns the next expiry: idle timeout from now, extended to
// cover every live namespace, capped by the max lifetime.
func (m *Manager) calculateExpiry(session *Session, now time.Time) time.Time {
	expiry := now.Add(m.config.IdleTimeout)
	for _, b := range session.Namespaces {
		if b.ExpiresAt.After(expiry) {
			expiry = b.ExpiresAt
		}
	}

	if m.config.MaxLifetime > 0 {
		if maxExpiry := session.CreatedAt.Add(m.config.MaxLifetime); maxExpiry.Before(expiry) {
			return maxExpiry
		}
	}
	return expiry
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
