package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory, encoded the same way as
// RedisStore so values read back with the same types in both stores.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	stop    chan struct{}
	stopped sync.Once
}

// NewMemoryStore creates a store that drops expired sessions every interval.
// A non-positive interval leaves expired sessions until they are read.
func NewMemoryStore(interval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}
	if interval > 0 {
		go s.purgeEvery(interval)
	}
	return s
}

func (s *MemoryStore) Create(ctx context.Context, session *Session) error {
	return s.put(session, false)
}

// Get returns a decoded copy. Expired sessions are dropped on read.
func (s *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	s.mu.Lock()
	e, ok := s.entries[token]
	if ok && time.Now().After(e.expiresAt) {
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, ErrSessionExpired
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, errors.Join(ErrCorruptedSession, err)
	}
	return &session, nil
}

func (s *MemoryStore) Update(ctx context.Context, session *Session) error {
	return s.put(session, true)
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
	return nil
}

// Len counts stored sessions, including expired ones not yet purged.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Purge drops every session expired at now.
func (s *MemoryStore) Purge(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}

// Close stops the purge loop. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.stopped.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) put(session *Session, mustExist bool) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrCorruptedSession, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[session.Token]; mustExist && !ok {
		return ErrSessionNotFound
	}
	s.entries[session.Token] = memoryEntry{data: data, expiresAt: session.ExpiresAt}
	return nil
}

func (s *MemoryStore) purgeEvery(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case now := <-t.C:
			s.Purge(now)
		case <-s.stop:
			return
		}
	}
}
