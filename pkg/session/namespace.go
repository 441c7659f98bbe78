package session

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Namespace scopes session values to one subsystem. Every write resets the
// namespace expiry.
type Namespace struct {
	manager *Manager
	name    string
	ttl     time.Duration
}

// Name returns the namespace name
func (n *Namespace) Name() string { return n.name }

// TTL returns the lifetime applied on every write
func (n *Namespace) TTL() time.Duration { return n.ttl }

// Get reads a value. A missing or expired session is not an error.
func (n *Namespace) Get(ctx context.Context, r *http.Request, key string) (any, bool, error) {
	session, err := n.manager.Get(ctx, r)
	if err != nil {
		if isMissing(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	val, ok := session.Get(n.name, key)
	return val, ok, nil
}

// GetString reads a string value.
func (n *Namespace) GetString(ctx context.Context, r *http.Request, key string) (string, bool, error) {
	val, ok, err := n.Get(ctx, r, key)
	if err != nil || !ok {
		return "", false, err
	}
	str, ok := val.(string)
	return str, ok, nil
}

// Set writes a value, creating the session if needed.
func (n *Namespace) Set(ctx context.Context, w http.ResponseWriter, r *http.Request, key string, value any) error {
	session, err := n.manager.Ensure(ctx, w, r)
	if err != nil {
		return err
	}

	session.Set(n.name, key, value, n.ttl)
	return n.manager.Save(ctx, w, session)
}

// Delete removes a value. A missing session is not an error.
func (n *Namespace) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request, key string) error {
	session, err := n.manager.Get(ctx, r)
	if err != nil {
		if isMissing(err) {
			return nil
		}
		return err
	}

	session.Delete(n.name, key)
	return n.manager.Save(ctx, w, session)
}

func isMissing(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrCorruptedSession)
}
