package mediaversion

import (
	"strings"
)

// RedirectURL builds the URL of the current request rewritten to target.
// It returns "" when that URL is the current one, so callers never loop.
func (rv *Resolver) RedirectURL(req *Request, target string) string {
	key, ok := rv.registry.Canonical(target)
	if !ok {
		key = rv.registry.Default()
	}
	return rv.redirectURL(req, key)
}

func (rv *Resolver) redirectURL(req *Request, target string) string {
	q := cloneValues(req.Query)
	q.Del(rv.cfg.SwitchParam)

	var u string
	switch rv.cfg.Mode {
	case ModeQuery:
		if target == rv.registry.Default() {
			q.Del(rv.cfg.VersionParam)
		} else {
			q.Set(rv.cfg.VersionParam, target)
		}
		for name, value := range rv.cfg.QueryDefaults {
			if vals, ok := q[name]; ok && len(vals) == 1 && strings.EqualFold(vals[0], value) {
				q.Del(name)
			}
		}
		u = req.BaseURL + req.Path
	default:
		q.Del(rv.cfg.VersionParam)
		token, _ := rv.registry.Lookup(target)
		u = req.BaseURL + rv.prefixPath(token, req.Path)
	}

	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	if u == req.FullURL() {
		return ""
	}
	return u
}

// prefixPath puts token in front of a path that may carry a query string.
// The prefixed site root loses its trailing slash under TrailingSlashRemove.
func (rv *Resolver) prefixPath(token, pathAndQuery string) string {
	if token == "" {
		if pathAndQuery == "" {
			return "/"
		}
		return pathAndQuery
	}

	path, query, hasQuery := strings.Cut(pathAndQuery, "?")
	switch {
	case path == "" || path == "/":
		path = "/" + token
		if rv.cfg.TrailingSlash == TrailingSlashKeep {
			path += "/"
		}
	case path[0] != '/':
		path = "/" + token + "/" + path
	default:
		path = "/" + token + path
	}

	if hasQuery {
		path += "?" + query
	}
	return path
}
