package session

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Session is a client session split into namespaces, each with its own expiry.
type Session struct {
	ID         uuid.UUID          `json:"id"`
	Token      string             `json:"token"`
	Namespaces map[string]*Bucket `json:"namespaces,omitempty"`
	ExpiresAt  time.Time          `json:"expires_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Bucket holds the values of one namespace.
type Bucket struct {
	Values    map[string]any `json:"values"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// NewSession creates a new session with the given token and lifetime
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New(),
		Token:      token,
		Namespaces: make(map[string]*Bucket),
		ExpiresAt:  now.Add(ttl),
		UpdatedAt:  now,
		CreatedAt:  now,
	}
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from a namespace. Values of an expired namespace are
// reported as missing.
func (s *Session) Get(namespace, key string) (any, bool) {
	b := s.bucket(namespace)
	if b == nil {
		return nil, false
	}
	val, ok := b.Values[key]
	return val, ok
}

// GetString retrieves a string value from a namespace
func (s *Session) GetString(namespace, key string) (string, bool) {
	val, ok := s.Get(namespace, key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value in a namespace and resets the namespace expiry to now+ttl.
// A non-positive ttl keeps the namespace alive as long as the session.
func (s *Session) Set(namespace, key string, value any, ttl time.Duration) {
	if s == nil {
		return
	}
	if s.Namespaces == nil {
		s.Namespaces = make(map[string]*Bucket)
	}
	b, ok := s.Namespaces[namespace]
	if !ok || b.expired() {
		b = &Bucket{Values: make(map[string]any)}
		s.Namespaces[namespace] = b
	}
	b.Values[key] = value
	if ttl > 0 {
		b.ExpiresAt = time.Now().Add(ttl)
	} else {
		b.ExpiresAt = time.Time{}
	}
}

// Delete removes a value from a namespace
func (s *Session) Delete(namespace, key string) {
	if s == nil || s.Namespaces == nil {
		return
	}
	if b, ok := s.Namespaces[namespace]; ok {
		delete(b.Values, key)
	}
}

// Clear removes a whole namespace
func (s *Session) Clear(namespace string) {
	if s == nil || s.Namespaces == nil {
		return
	}
	delete(s.Namespaces, namespace)
}

// Touch updates the last write time
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.UpdatedAt = time.Now()
}

// Clone returns a deep copy of the session suitable for storing.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.Namespaces != nil {
		c.Namespaces = make(map[string]*Bucket, len(s.Namespaces))
		for name, b := range s.Namespaces {
			nb := &Bucket{ExpiresAt: b.ExpiresAt}
			if b.Values != nil {
				nb.Values = make(map[string]any, len(b.Values))
				maps.Copy(nb.Values, b.Values)
			}
			c.Namespaces[name] = nb
		}
	}
	return &c
}

func (s *Session) bucket(namespace string) *Bucket {
	if s == nil || s.Namespaces == nil {
		return nil
	}
	b, ok := s.Namespaces[namespace]
	if !ok || b.expired() {
		return nil
	}
	return b
}

func (b *Bucket) expired() bool {
	return !b.ExpiresAt.IsZero() && time.Now().After(b.ExpiresAt)
}
