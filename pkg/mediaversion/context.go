package mediaversion

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mediakit/pkg/logger"
)

type versionContextKey struct{}

// WithVersion stores the resolved version key in ctx.
func WithVersion(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, versionContextKey{}, key)
}

// VersionFromContext returns the version resolved for the current request,
// or "" outside of Middleware.
func VersionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(versionContextKey{}).(string)
	return v
}

// LogExtractor adds media_version to log records of resolved requests.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := VersionFromContext(ctx); v != "" {
			return logger.MediaVersion(v), true
		}
		return slog.Attr{}, false
	}
}
