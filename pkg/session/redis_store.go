package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrymomot/mediakit/pkg/redis"
)

// RedisStore keeps sessions as JSON documents in Redis. Each key expires
// together with its session.
type RedisStore struct {
	storage *redis.Storage
}

// NewRedisStore creates a store on top of a prefixed redis storage.
func NewRedisStore(storage *redis.Storage) *RedisStore {
	return &RedisStore{storage: storage}
}

// Create stores a new session
func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	data, ttl, err := encode(session)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, session.Token, data, ttl)
}

// Get retrieves a session by token
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	data, err := s.storage.Get(ctx, token)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrCorruptedSession, err)
	}
	if session.IsExpired() {
		_ = s.storage.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Update replaces an existing session
func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	data, ttl, err := encode(session)
	if err != nil {
		return err
	}
	ok, err := s.storage.SetXX(ctx, session.Token, data, ttl)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Delete removes a session by token
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.storage.Delete(ctx, token)
}

func encode(session *Session) ([]byte, time.Duration, error) {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil, 0, ErrSessionExpired
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, 0, errors.Join(ErrCorruptedSession, err)
	}
	return data, ttl, nil
}
