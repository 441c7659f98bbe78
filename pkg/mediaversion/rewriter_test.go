package mediaversion_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
)

type fakeRoute struct {
	method string
	path   string
	err    error
}

func (r fakeRoute) Method() string { return r.method }

func (r fakeRoute) URL(params url.Values) (string, string, error) {
	if r.err != nil {
		return "", "", r.err
	}
	if enc := params.Encode(); enc != "" {
		return "", r.path + "?" + enc, nil
	}
	return "", r.path, nil
}

func TestURL(t *testing.T) {
	t.Parallel()

	products := fakeRoute{method: http.MethodGet, path: "/products"}

	tests := []struct {
		name    string
		mutate  func(*mediaversion.Config)
		ctx     string
		route   fakeRoute
		params  url.Values
		want    string
		wantErr error
	}{
		{name: "default version", route: products, want: "/products"},
		{name: "explicit version", route: products, params: url.Values{"media_version": {"mobile"}}, want: "/m/products"},
		{name: "explicit version case folded", route: products, params: url.Values{"media_version": {"TABLET"}}, want: "/t/products"},
		{name: "current version", ctx: "tablet", route: products, want: "/t/products"},
		{name: "explicit beats current", ctx: "tablet", route: products, params: url.Values{"media_version": {"full"}}, want: "/products"},
		{name: "other params", route: products, params: url.Values{"media_version": {"mobile"}, "page": {"2"}}, want: "/m/products?page=2"},
		{name: "root collapses", route: fakeRoute{path: "/"}, params: url.Values{"media_version": {"mobile"}}, want: "/m"},
		{
			name:    "unknown version",
			route:   products,
			params:  url.Values{"media_version": {"watch"}},
			want:    "/products",
			wantErr: mediaversion.ErrUnknownVersion,
		},
		{name: "post route not prefixed", route: fakeRoute{method: http.MethodPost, path: "/orders"}, params: url.Values{"media_version": {"mobile"}}, want: "/orders"},
		{name: "any route prefixed", route: fakeRoute{method: "ANY", path: "/orders"}, params: url.Values{"media_version": {"mobile"}}, want: "/m/orders"},
		{
			name:   "post route prefixed when all methods route",
			mutate: func(c *mediaversion.Config) { c.RouteGetRequestsOnly = false },
			route:  fakeRoute{method: http.MethodPost, path: "/orders"},
			params: url.Values{"media_version": {"mobile"}},
			want:   "/m/orders",
		},
		{
			name:   "strict adds switch",
			mutate: func(c *mediaversion.Config) { c.StrictSessionMode = true },
			ctx:    "full",
			route:  products,
			params: url.Values{"media_version": {"mobile"}},
			want:   "/m/products?switch_media_version=mobile",
		},
		{
			name:   "strict same version",
			mutate: func(c *mediaversion.Config) { c.StrictSessionMode = true },
			ctx:    "mobile",
			route:  products,
			want:   "/m/products",
		},
		{
			name:   "query mode",
			mutate: func(c *mediaversion.Config) { c.Mode = mediaversion.ModeQuery },
			route:  products,
			params: url.Values{"media_version": {"mobile"}, "page": {"2"}},
			want:   "/products?page=2&media_version=mobile",
		},
		{
			name:   "query mode default",
			mutate: func(c *mediaversion.Config) { c.Mode = mediaversion.ModeQuery },
			ctx:    "mobile",
			route:  products,
			params: url.Values{"media_version": {"full"}},
			want:   "/products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mediaversion.DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			rv, err := mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(&memStore{}))
			require.NoError(t, err)

			ctx := context.Background()
			if tt.ctx != "" {
				ctx = mediaversion.WithVersion(ctx, tt.ctx)
			}

			got, err := rv.URL(ctx, tt.route, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURL_UnknownVersionMessage(t *testing.T) {
	t.Parallel()

	rv, err := mediaversion.NewResolver(mediaversion.DefaultConfig(), mediaversion.WithSessionStore(&memStore{}))
	require.NoError(t, err)

	_, err = rv.URL(context.Background(), fakeRoute{path: "/"}, url.Values{"media_version": {"watch"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"watch"`)
	assert.Contains(t, err.Error(), "mobile, tablet, full")
}

func TestURL_DoesNotModifyParams(t *testing.T) {
	t.Parallel()

	cfg := mediaversion.DefaultConfig()
	cfg.StrictSessionMode = true
	rv, err := mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(&memStore{}))
	require.NoError(t, err)

	params := url.Values{"media_version": {"mobile"}}
	_, err = rv.URL(context.Background(), fakeRoute{path: "/"}, params)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"media_version": {"mobile"}}, params)
}

func TestURL_RouteError(t *testing.T) {
	t.Parallel()

	rv, err := mediaversion.NewResolver(mediaversion.DefaultConfig(), mediaversion.WithSessionStore(&memStore{}))
	require.NoError(t, err)

	boom := errors.New("missing param id")
	_, err = rv.URL(context.Background(), fakeRoute{err: boom}, nil)
	assert.ErrorIs(t, err, mediaversion.ErrRouteURL)
	assert.ErrorIs(t, err, boom)
}

func TestURL_SingleVersion(t *testing.T) {
	t.Parallel()

	cfg := mediaversion.DefaultConfig()
	cfg.Mode = mediaversion.ModeQuery
	rv, err := mediaversion.NewResolver(cfg,
		mediaversion.WithRegistry(mediaversion.MustRegistry(mediaversion.Entry{Key: "mobile", Token: "m"})),
	)
	require.NoError(t, err, "single version needs no session store")

	got, err := rv.URL(context.Background(), fakeRoute{path: "/products"}, url.Values{"media_version": {"mobile"}})
	require.NoError(t, err)
	assert.Equal(t, "/products", got)
}

func TestURL_RoundTripsThroughExtract(t *testing.T) {
	t.Parallel()

	registry := mediaversion.MustRegistry(
		mediaversion.Entry{Key: "mobile", Token: "m"},
		mediaversion.Entry{Key: "tablet", Token: "t"},
		mediaversion.Entry{Key: "kiosk", Token: "kio"},
		mediaversion.Entry{Key: "full"},
	)

	for _, mode := range []mediaversion.Mode{mediaversion.ModePath, mediaversion.ModeQuery} {
		t.Run(string(mode), func(t *testing.T) {
			t.Parallel()

			cfg := mediaversion.DefaultConfig()
			cfg.Mode = mode
			rv, err := mediaversion.NewResolver(cfg,
				mediaversion.WithSessionStore(&memStore{}),
				mediaversion.WithRegistry(registry),
			)
			require.NoError(t, err)

			for _, key := range rv.Registry().Keys() {
				link, err := rv.URL(context.Background(), fakeRoute{path: "/catalog/shoes"}, url.Values{"media_version": {key}, "page": {"2"}})
				require.NoError(t, err)

				req := rv.Extract(httptest.NewRequest(http.MethodGet, link, nil))
				assert.Equal(t, key, req.Requested, link)
				assert.Equal(t, "/catalog/shoes", req.Path, link)
				assert.Equal(t, "2", req.Query.Get("page"), link)
			}
		})
	}
}

func TestURL_MatchesRedirectTarget(t *testing.T) {
	t.Parallel()

	for _, mode := range []mediaversion.Mode{mediaversion.ModePath, mediaversion.ModeQuery} {
		t.Run(string(mode), func(t *testing.T) {
			t.Parallel()

			cfg := mediaversion.DefaultConfig()
			cfg.Mode = mode
			rv, err := mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(&memStore{}))
			require.NoError(t, err)

			for _, key := range rv.Registry().Keys() {
				link, err := rv.URL(context.Background(), fakeRoute{path: "/products"}, url.Values{"media_version": {key}, "page": {"2"}})
				require.NoError(t, err)

				redirect := rv.RedirectURL(rv.Extract(httptest.NewRequest(http.MethodGet, "/products?page=2", nil)), key)
				if redirect == "" {
					redirect = "/products?page=2"
				}

				l, err := url.Parse(link)
				require.NoError(t, err)
				r, err := url.Parse(redirect)
				require.NoError(t, err)
				assert.Equal(t, r.Path, l.Path, key)
				assert.Equal(t, r.Query(), l.Query(), key)
			}
		})
	}
}
