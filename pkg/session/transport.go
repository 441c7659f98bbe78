package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/mediakit/pkg/cookie"
)

// Transport moves the session token between client and server.
type Transport interface {
	// Token returns ErrSessionNotFound when the request carries no usable token
	Token(r *http.Request) (string, error)
	Issue(w http.ResponseWriter, token string, ttl time.Duration) error
	Revoke(w http.ResponseWriter) error
}

type cookieTransport struct {
	cookies *cookie.Manager
	name    string
	opts    []cookie.Option
}

// CookieTransport keeps the token in a signed HTTP-only cookie. opts are
// applied last and may override the Secure and SameSite defaults.
func CookieTransport(cookies *cookie.Manager, name string, secure bool, opts ...cookie.Option) Transport {
	base := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithSecure(secure),
	}
	return &cookieTransport{cookies: cookies, name: name, opts: append(base, opts...)}
}

// Token treats missing, malformed and forged cookies alike.
func (t *cookieTransport) Token(r *http.Request) (string, error) {
	token, err := t.cookies.GetSigned(r, t.name)
	if err != nil || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (t *cookieTransport) Issue(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := append(t.opts[:len(t.opts):len(t.opts)], cookie.WithMaxAge(int(ttl.Seconds())))
	return t.cookies.SetSigned(w, t.name, token, opts...)
}

func (t *cookieTransport) Revoke(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name)
	return nil
}
