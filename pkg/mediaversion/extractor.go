package mediaversion

import (
	"net/http"
	"net/url"
	"strings"
)

// Request is the per-request view the resolver works on. Query is a private
// copy, so builders may modify it freely.
type Request struct {
	Method    string
	UserAgent string

	// BaseURL is the optional scheme://host followed by the base path
	BaseURL string

	// Path is the application path with base path and version token removed
	Path string

	// OriginalPath is the application path as requested
	OriginalPath string

	RawQuery string
	Query    url.Values

	// Requested is the registry key the URL asked for, default if none
	Requested string

	// Switch is the registry key carried by the switch parameter, if valid
	Switch string
}

// FullURL returns the URL of the current request in the same shape the
// redirect builder produces, so both can be compared byte for byte.
func (q *Request) FullURL() string {
	u := q.BaseURL + q.OriginalPath
	if q.RawQuery != "" {
		u += "?" + q.RawQuery
	}
	return u
}

// IsGet reports whether the request may establish or switch a version.
func (q *Request) IsGet() bool {
	return q.Method == http.MethodGet || q.Method == http.MethodHead
}

// Extract parses r into a Request, resolving the requested version and
// stripping its token from the path.
func (rv *Resolver) Extract(r *http.Request) *Request {
	req := &Request{
		Method:    r.Method,
		UserAgent: r.UserAgent(),
		BaseURL:   rv.baseURL(r),
		RawQuery:  r.URL.RawQuery,
		Query:     cloneValues(r.URL.Query()),
	}

	path, _ := rv.stripBase(r.URL.Path)
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	req.OriginalPath = path
	req.Path = path

	if key, ok := rv.registry.Match(req.Query.Get(rv.cfg.VersionParam)); ok {
		req.Requested = key
	} else if rv.cfg.Mode == ModePath {
		if key, rest, ok := rv.registry.matchPath(path); ok {
			req.Requested = key
			req.Path = rest
		}
	}
	if req.Requested == "" {
		req.Requested = rv.registry.Default()
	}

	if raw := strings.TrimSpace(req.Query.Get(rv.cfg.SwitchParam)); raw != "" {
		if key, ok := rv.registry.Canonical(raw); ok {
			req.Switch = key
		}
	}

	return req
}

// stripBase removes BasePath from path. The second result is false when
// path lies outside it; path is then returned unchanged.
func (rv *Resolver) stripBase(path string) (string, bool) {
	base := strings.TrimRight(rv.cfg.BasePath, "/")
	switch {
	case base == "":
		return path, true
	case path == base:
		return "/", true
	case strings.HasPrefix(path, base+"/"):
		return path[len(base):], true
	}
	return path, false
}

// baseURL builds the scheme, host and base path part of generated URLs.
func (rv *Resolver) baseURL(r *http.Request) string {
	base := strings.TrimRight(rv.cfg.BasePath, "/")
	if !rv.cfg.AbsoluteURLs {
		return base
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host + base
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
