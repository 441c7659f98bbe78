package mediaversion

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mediakit/pkg/session"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry sets the version registry, overriding Config.Versions.
func WithRegistry(r *Registry) Option {
	return func(rv *Resolver) {
		rv.registry = r
	}
}

// WithSessionStore sets where the resolved version is remembered.
func WithSessionStore(s SessionStore) Option {
	return func(rv *Resolver) {
		rv.sessions = s
	}
}

// WithSessionManager stores the version in a namespace of m whose lifetime
// is Config.SessionTTL.
func WithSessionManager(m *session.Manager) Option {
	return func(rv *Resolver) {
		rv.manager = m
	}
}

// WithClassifier replaces the user-agent based device classifier.
func WithClassifier(c Classifier) Option {
	return func(rv *Resolver) {
		rv.classifier = c
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(rv *Resolver) {
		if l != nil {
			rv.logger = l
		}
	}
}

// WithObserver receives every resolution outcome and fault.
func WithObserver(o Observer) Option {
	return func(rv *Resolver) {
		if o != nil {
			rv.observer = o
		}
	}
}

// WithErrorHandler sets how Middleware answers resolution faults.
func WithErrorHandler(h func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(rv *Resolver) {
		if h != nil {
			rv.errorHandler = h
		}
	}
}
