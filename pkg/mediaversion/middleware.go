package mediaversion

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/mediakit/pkg/logger"
)

// Middleware resolves the media version before next runs. Mismatches are
// answered with a 303 redirect; accepted requests reach next with the
// version token removed from the path and the version in the context.
// Requests under SkipPaths or outside BasePath pass through untouched.
func (rv *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, inside := rv.stripBase(r.URL.Path); !inside || rv.skipped(r.URL.Path) {
			rv.observer.Resolved(r.Context(), Result{Path: r.URL.Path, Reason: ReasonSkipped})
			next.ServeHTTP(w, r)
			return
		}

		res, err := rv.Resolve(w, r)
		if err != nil {
			rv.errorHandler(w, r, err)
			return
		}

		if res.Redirected() {
			http.Redirect(w, r, res.Redirect, res.StatusCode)
			return
		}

		r = r.WithContext(WithVersion(r.Context(), res.Version))
		if path := strings.TrimRight(rv.cfg.BasePath, "/") + res.Path; path != r.URL.Path {
			u := *r.URL
			u.Path = path
			u.RawPath = ""
			r.URL = &u
		}
		next.ServeHTTP(w, r)
	})
}

func (rv *Resolver) skipped(path string) bool {
	for _, prefix := range rv.cfg.SkipPaths {
		if prefix == "" {
			continue
		}
		dir := strings.TrimSuffix(prefix, "/")
		if path == prefix || path == dir || strings.HasPrefix(path, dir+"/") {
			return true
		}
	}
	return false
}

func (rv *Resolver) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	rv.logger.ErrorContext(r.Context(), "media version middleware", logger.Path(r.URL.Path), logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
