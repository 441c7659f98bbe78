package mediaversion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/mediakit/pkg/logger"
)

// Route is the part of a router route the rewriter needs.
type Route interface {
	// Method is the HTTP method the route is bound to, "" for any
	Method() string

	// URL renders the route with params. Unused params belong in the query.
	URL(params url.Values) (base, pathAndQuery string, err error)
}

// URL builds a link to route carrying a media version.
//
// The version is taken from params[VersionParam] when present (the param is
// consumed), else from the version resolved for the current request, else
// the default. An unregistered version is a programming error: the link is
// still built without any version marker and ErrUnknownVersion is returned
// with it.
func (rv *Resolver) URL(ctx context.Context, route Route, params url.Values) (string, error) {
	params = cloneValues(params)

	current := rv.currentVersion(ctx)
	desired := current
	if _, ok := params[rv.cfg.VersionParam]; ok {
		desired = params.Get(rv.cfg.VersionParam)
		params.Del(rv.cfg.VersionParam)
	}

	var versionErr error
	key, known := rv.registry.Canonical(desired)
	if !known {
		versionErr = fmt.Errorf("%w: %q, allowed: %s", ErrUnknownVersion, desired, strings.Join(rv.registry.Keys(), ", "))
		rv.logger.ErrorContext(ctx, "link to unknown media version", logger.Error(versionErr))
	}

	if known && rv.cfg.StrictSessionMode && key != current {
		params.Set(rv.cfg.SwitchParam, key)
	}

	base, pathAndQuery, err := route.URL(params)
	if err != nil {
		return "", errors.Join(ErrRouteURL, err)
	}

	gated := rv.cfg.RouteGetRequestsOnly && !isGetRoute(route.Method())
	if !known || gated || !rv.registry.IsMultiVersion() {
		return base + pathAndQuery, versionErr
	}

	token, _ := rv.registry.Lookup(key)
	switch rv.cfg.Mode {
	case ModeQuery:
		if key != rv.registry.Default() {
			pathAndQuery = appendQuery(pathAndQuery, rv.cfg.VersionParam, key)
		}
	default:
		pathAndQuery = rv.prefixPath(token, pathAndQuery)
	}
	return base + pathAndQuery, nil
}

// currentVersion is the request version, or the default outside requests.
func (rv *Resolver) currentVersion(ctx context.Context) string {
	if key, ok := rv.registry.Canonical(VersionFromContext(ctx)); ok {
		return key
	}
	return rv.registry.Default()
}

func isGetRoute(method string) bool {
	switch strings.ToUpper(method) {
	case "", "*", "ANY", http.MethodGet, http.MethodHead:
		return true
	}
	return false
}

func appendQuery(pathAndQuery, name, value string) string {
	sep := "?"
	switch {
	case strings.HasSuffix(pathAndQuery, "?"), strings.HasSuffix(pathAndQuery, "&"):
		sep = ""
	case strings.Contains(pathAndQuery, "?"):
		sep = "&"
	}
	if pathAndQuery == "" {
		pathAndQuery = "/"
	}
	return pathAndQuery + sep + url.QueryEscape(name) + "=" + url.QueryEscape(value)
}
