package mediaversion

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/mediakit/pkg/session"
)

// Session layout of the stored version.
const (
	SessionNamespace = "mediaversion"
	SessionKey       = "media_version"
)

// Record is what the resolver remembers about a client.
type Record struct {
	Version string
}

// SessionStore persists a Record per client. Load reports ok=false when
// nothing is stored; the resolver validates the version itself.
type SessionStore interface {
	Load(ctx context.Context, r *http.Request) (Record, bool, error)
	Save(ctx context.Context, w http.ResponseWriter, r *http.Request, rec Record) error
}

type sessionStore struct {
	ns *session.Namespace
}

// NewSessionStore keeps the record in its own namespace of a session
// manager. The namespace expiry is reset to ttl on every save.
func NewSessionStore(m *session.Manager, ttl time.Duration) SessionStore {
	return &sessionStore{ns: m.Namespace(SessionNamespace, ttl)}
}

func (s *sessionStore) Load(ctx context.Context, r *http.Request) (Record, bool, error) {
	v, ok, err := s.ns.GetString(ctx, r, SessionKey)
	if err != nil || !ok || v == "" {
		return Record{}, false, err
	}
	return Record{Version: v}, true, nil
}

func (s *sessionStore) Save(ctx context.Context, w http.ResponseWriter, r *http.Request, rec Record) error {
	return s.ns.Set(ctx, w, r, SessionKey, rec.Version)
}
