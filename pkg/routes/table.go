package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Table keeps named routes in registration order and mounts them on a chi
// router. Registration is expected at startup; lookups are safe for
// concurrent use.
type Table struct {
	mu     sync.RWMutex
	base   string
	byName map[string]*Route
	order  []*Route
}

// New creates an empty table. base is prepended to every rendered URL,
// e.g. "https://example.com", and may be empty.
func New(base string) *Table {
	return &Table{
		base:   base,
		byName: make(map[string]*Route),
	}
}

// Handle registers a route. An empty method matches any method. Duplicate
// names and malformed patterns panic.
func (t *Table) Handle(method, name, pattern string, h http.Handler) *Route {
	parts, err := compile(pattern)
	if err != nil {
		panic(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byName[name]; ok {
		panic(fmt.Errorf("%w: %q", ErrDuplicateRoute, name))
	}
	r := &Route{
		name:    name,
		method:  method,
		pattern: pattern,
		base:    t.base,
		handler: h,
		parts:   parts,
	}
	t.byName[name] = r
	t.order = append(t.order, r)
	return r
}

// Get registers a GET route.
func (t *Table) Get(name, pattern string, h http.HandlerFunc) *Route {
	return t.Handle(http.MethodGet, name, pattern, h)
}

// Post registers a POST route.
func (t *Table) Post(name, pattern string, h http.HandlerFunc) *Route {
	return t.Handle(http.MethodPost, name, pattern, h)
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name string) (*Route, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	return r, nil
}

// URL renders the named route without any version handling.
func (t *Table) URL(name string, params url.Values) (string, error) {
	r, err := t.Lookup(name)
	if err != nil {
		return "", err
	}
	base, path, err := r.URL(params)
	if err != nil {
		return "", err
	}
	return base + path, nil
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*Route(nil), t.order...)
}

// Mount registers every route on r. A GET route also answers HEAD.
func (t *Table) Mount(r chi.Router) {
	for _, route := range t.Routes() {
		switch route.method {
		case "":
			r.Handle(route.pattern, route.handler)
		case http.MethodGet:
			r.Method(http.MethodGet, route.pattern, route.handler)
			r.Method(http.MethodHead, route.pattern, route.handler)
		default:
			r.Method(route.method, route.pattern, route.handler)
		}
	}
}
