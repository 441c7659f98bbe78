package mediaversion_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
)

// memStore is a single-client SessionStore.
type memStore struct {
	mu      sync.Mutex
	version string
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load(ctx context.Context, r *http.Request) (mediaversion.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.loadErr != nil {
		return mediaversion.Record{}, false, s.loadErr
	}
	if s.version == "" {
		return mediaversion.Record{}, false, nil
	}
	return mediaversion.Record{Version: s.version}, true, nil
}

func (s *memStore) Save(ctx context.Context, w http.ResponseWriter, r *http.Request, rec mediaversion.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.version = rec.Version
	return nil
}

func (s *memStore) stored() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// fixedClassifier always answers class and counts calls.
type fixedClassifier struct {
	class mediaversion.DeviceClass
	calls atomic.Int32
}

func (c *fixedClassifier) Classify(ctx context.Context, ua string) (mediaversion.DeviceClass, error) {
	c.calls.Add(1)
	return c.class, nil
}

func newResolver(t *testing.T, cfg mediaversion.Config, store *memStore, class mediaversion.DeviceClass, opts ...mediaversion.Option) (*mediaversion.Resolver, *fixedClassifier) {
	t.Helper()
	c := &fixedClassifier{class: class}
	base := []mediaversion.Option{
		mediaversion.WithSessionStore(store),
		mediaversion.WithClassifier(c),
	}
	rv, err := mediaversion.NewResolver(cfg, append(base, opts...)...)
	require.NoError(t, err)
	return rv, c
}

func resolve(t *testing.T, rv *mediaversion.Resolver, method, target string) mediaversion.Result {
	t.Helper()
	res, err := rv.Resolve(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return res
}

func strictConfig() mediaversion.Config {
	cfg := mediaversion.DefaultConfig()
	cfg.StrictSessionMode = true
	return cfg
}

func TestNewResolver_Validation(t *testing.T) {
	t.Parallel()

	store := &memStore{}

	cfg := mediaversion.DefaultConfig()
	cfg.Mode = "subdomain"
	_, err := mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(store))
	assert.ErrorIs(t, err, mediaversion.ErrInvalidMode)

	cfg = mediaversion.DefaultConfig()
	cfg.TrailingSlash = "sometimes"
	_, err = mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(store))
	assert.ErrorIs(t, err, mediaversion.ErrInvalidMode)

	cfg = mediaversion.DefaultConfig()
	cfg.SwitchParam = cfg.VersionParam
	_, err = mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(store))
	assert.ErrorIs(t, err, mediaversion.ErrInvalidMode)

	cfg = mediaversion.DefaultConfig()
	cfg.Versions = "mobile=m,full=f"
	_, err = mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(store))
	assert.ErrorIs(t, err, mediaversion.ErrNoDefaultVersion)

	cfg.Mode = mediaversion.ModeQuery
	_, err = mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(store))
	assert.NoError(t, err, "query mode needs no unprefixed version")

	_, err = mediaversion.NewResolver(mediaversion.DefaultConfig())
	assert.ErrorIs(t, err, mediaversion.ErrNoSessionStore)

	cfg = mediaversion.DefaultConfig()
	cfg.Versions = ""
	_, err = mediaversion.NewResolver(cfg, mediaversion.WithSessionStore(store))
	assert.ErrorIs(t, err, mediaversion.ErrEmptyRegistry)

	rv, err := mediaversion.NewResolver(mediaversion.Config{Versions: "mobile=m,tablet=t,full="}, mediaversion.WithSessionStore(store))
	require.NoError(t, err, "zero fields get defaults")
	assert.Equal(t, mediaversion.DefaultVersionParam, rv.Config().VersionParam)
	assert.Equal(t, []string{"mobile", "tablet", "full"}, rv.Registry().Keys())
}

func TestResolve_SingleVersionIsNoop(t *testing.T) {
	t.Parallel()

	store := &memStore{version: "mobile"}
	rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceMobile,
		mediaversion.WithRegistry(mediaversion.MustRegistry(mediaversion.Entry{Key: "full"})))

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/m/products?media_version=mobile"},
		{http.MethodGet, "/products?switch_media_version=full"},
		{http.MethodPost, "/orders"},
	} {
		res := resolve(t, rv, tc.method, tc.target)
		assert.Equal(t, "full", res.Version)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, mediaversion.ReasonSingleVersion, res.Reason)
	}

	assert.Zero(t, store.loads)
	assert.Zero(t, store.saves)
	assert.Zero(t, c.calls.Load())
}

func TestResolve_EndToEnd(t *testing.T) {
	t.Parallel()

	registry := mediaversion.MustRegistry(
		mediaversion.Entry{Key: "mobile", Token: "/m"},
		mediaversion.Entry{Key: "tablet", Token: "/t"},
		mediaversion.Entry{Key: "full", Token: ""},
	)

	t.Run("desktop without session keeps full", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceDesktop, mediaversion.WithRegistry(registry))

		res := resolve(t, rv, http.MethodGet, "/products")
		assert.Equal(t, "full", res.Version)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "/products", res.Path)
		assert.Equal(t, mediaversion.DetectionMatched, res.Detection)
		assert.Equal(t, int32(1), c.calls.Load())
		assert.Equal(t, "full", store.stored())
	})

	t.Run("strict session redirects to stored version", func(t *testing.T) {
		t.Parallel()
		store := &memStore{version: "mobile"}
		rv, c := newResolver(t, strictConfig(), store, mediaversion.DeviceDesktop, mediaversion.WithRegistry(registry))

		res := resolve(t, rv, http.MethodGet, "/t/products")
		assert.Equal(t, "/m/products", res.Redirect)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Equal(t, "mobile", res.Version)
		assert.Equal(t, mediaversion.ReasonStrictSession, res.Reason)
		assert.Equal(t, "mobile", store.stored())
		assert.Zero(t, store.saves)
		assert.Zero(t, c.calls.Load())
	})
}

func TestResolve_QueryMode(t *testing.T) {
	t.Parallel()

	queryConfig := func(strict bool) mediaversion.Config {
		cfg := mediaversion.DefaultConfig()
		cfg.Mode = mediaversion.ModeQuery
		cfg.StrictSessionMode = strict
		return cfg
	}

	t.Run("strict session converges", func(t *testing.T) {
		t.Parallel()
		store := &memStore{version: "mobile"}
		rv, _ := newResolver(t, queryConfig(true), store, mediaversion.DeviceDesktop)

		res := resolve(t, rv, http.MethodGet, "/products?media_version=t")
		assert.Equal(t, "/products?media_version=mobile", res.Redirect)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Equal(t, mediaversion.ReasonStrictSession, res.Reason)

		res = resolve(t, rv, http.MethodGet, res.Redirect)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "mobile", res.Version)
		assert.Equal(t, "/products", res.Path)
		assert.Zero(t, store.saves)
	})

	t.Run("permissive session follows url", func(t *testing.T) {
		t.Parallel()
		store := &memStore{version: "mobile"}
		rv, c := newResolver(t, queryConfig(false), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodGet, "/products?media_version=tablet&page=2")
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "tablet", res.Version)
		assert.Equal(t, mediaversion.ReasonURL, res.Reason)
		assert.Equal(t, "tablet", store.stored())
		assert.Zero(t, c.calls.Load())

		res = resolve(t, rv, http.MethodGet, "/products")
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "full", res.Version)
		assert.Equal(t, "full", store.stored())
	})

	t.Run("switch redirects then settles", func(t *testing.T) {
		t.Parallel()
		store := &memStore{version: "mobile"}
		rv, _ := newResolver(t, queryConfig(true), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodGet, "/products?page=2&media_version=mobile&switch_media_version=tablet")
		assert.Equal(t, "/products?media_version=tablet&page=2", res.Redirect)
		assert.Equal(t, mediaversion.ReasonSwitch, res.Reason)
		assert.Equal(t, "tablet", store.stored())

		res = resolve(t, rv, http.MethodGet, res.Redirect)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "tablet", res.Version)
	})

	t.Run("switch to default drops the param", func(t *testing.T) {
		t.Parallel()
		store := &memStore{version: "mobile"}
		rv, _ := newResolver(t, queryConfig(true), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodGet, "/products?media_version=mobile&switch_media_version=full")
		assert.Equal(t, "/products", res.Redirect)
		assert.Equal(t, "full", store.stored())

		res = resolve(t, rv, http.MethodGet, res.Redirect)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "full", res.Version)
	})

	t.Run("detection mismatch redirects once", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, c := newResolver(t, queryConfig(false), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodGet, "/products")
		assert.Equal(t, "/products?media_version=mobile", res.Redirect)
		assert.Equal(t, mediaversion.DetectionMismatched, res.Detection)
		assert.Equal(t, "mobile", store.stored())

		res = resolve(t, rv, http.MethodGet, res.Redirect)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "mobile", res.Version)
		assert.Equal(t, int32(1), c.calls.Load())
	})
}

func TestResolve_SwitchWins(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/t/products?switch_media_version=full",
		"/products?switch_media_version=FULL&media_version=tablet",
		"/m/products?switch_media_version=full",
	} {
		store := &memStore{version: "mobile"}
		rv, c := newResolver(t, strictConfig(), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodGet, target)
		assert.Equal(t, "full", res.Version, target)
		assert.Equal(t, mediaversion.ReasonSwitch, res.Reason, target)
		assert.Equal(t, "full", store.stored(), target)
		assert.Equal(t, "/products", res.Redirect, target)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Zero(t, c.calls.Load())
	}
}

func TestResolve_SwitchKeepsOtherParams(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	rv, _ := newResolver(t, strictConfig(), store, mediaversion.DeviceDesktop)

	res := resolve(t, rv, http.MethodGet, "/products?page=2&switch_media_version=tablet")
	assert.Equal(t, "/t/products?page=2", res.Redirect)
	assert.Equal(t, "tablet", store.stored())
}

func TestResolve_InvalidSwitchIgnored(t *testing.T) {
	t.Parallel()

	store := &memStore{version: "full"}
	rv, _ := newResolver(t, strictConfig(), store, mediaversion.DeviceDesktop)

	res := resolve(t, rv, http.MethodGet, "/products?switch_media_version=tv")
	assert.Equal(t, "full", res.Version)
	assert.Empty(t, res.Switch)
	assert.Empty(t, res.Redirect)
	assert.Zero(t, store.saves)
}

func TestResolve_SwitchNeedsGet(t *testing.T) {
	t.Parallel()

	store := &memStore{version: "mobile"}
	rv, _ := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceDesktop)

	res := resolve(t, rv, http.MethodPost, "/m/orders?switch_media_version=full")
	assert.Equal(t, "mobile", res.Version)
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "mobile", store.stored())

	cfg := mediaversion.DefaultConfig()
	cfg.RouteGetRequestsOnly = false
	rv, _ = newResolver(t, cfg, store, mediaversion.DeviceDesktop)
	res = resolve(t, rv, http.MethodPost, "/m/orders?switch_media_version=full")
	assert.Equal(t, mediaversion.ReasonSwitch, res.Reason)
	assert.Equal(t, "/orders", res.Redirect)
	assert.Equal(t, "full", store.stored())
}

func TestResolve_StrictConvergence(t *testing.T) {
	t.Parallel()

	store := &memStore{version: "tablet"}
	rv, _ := newResolver(t, strictConfig(), store, mediaversion.DeviceDesktop)

	res := resolve(t, rv, http.MethodGet, "/m/cart?step=1")
	assert.Equal(t, "/t/cart?step=1", res.Redirect)

	res = resolve(t, rv, http.MethodGet, res.Redirect)
	assert.Empty(t, res.Redirect, "the redirect target is accepted")
	assert.Equal(t, "tablet", res.Version)
	assert.Equal(t, "/cart", res.Path)

	res = resolve(t, rv, http.MethodGet, "/cart")
	assert.Equal(t, "/t/cart", res.Redirect)
}

func TestResolve_PermissiveConvergence(t *testing.T) {
	t.Parallel()

	store := &memStore{version: "mobile"}
	rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceMobile)

	res := resolve(t, rv, http.MethodGet, "/t/products")
	assert.Equal(t, "tablet", res.Version)
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "tablet", store.stored())
	assert.Equal(t, 1, store.saves)

	res = resolve(t, rv, http.MethodGet, "/t/products")
	assert.Equal(t, "tablet", res.Version)
	assert.Empty(t, res.Redirect)
	assert.Equal(t, 1, store.saves, "no write when nothing changed")
	assert.Zero(t, c.calls.Load())
}

func TestResolve_FirstDetection(t *testing.T) {
	t.Parallel()

	t.Run("mismatch redirects to detected", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodGet, "/products?page=2")
		assert.Equal(t, "/m/products?page=2", res.Redirect)
		assert.Equal(t, mediaversion.DetectionMismatched, res.Detection)
		assert.Equal(t, mediaversion.ReasonDetection, res.Reason)
		assert.Equal(t, mediaversion.DeviceMobile, res.Class)
		assert.Equal(t, "mobile", store.stored())

		res = resolve(t, rv, http.MethodGet, res.Redirect)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, mediaversion.DetectionUnknown, res.Detection)
		assert.Equal(t, int32(1), c.calls.Load(), "detection runs once")
	})

	t.Run("site root collapses", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, _ := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceTablet)

		res := resolve(t, rv, http.MethodGet, "/")
		assert.Equal(t, "/t", res.Redirect)

		res = resolve(t, rv, http.MethodGet, "/t")
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "/", res.Path)
	})

	t.Run("unregistered class falls back to default", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, _ := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceMobile,
			mediaversion.WithRegistry(mediaversion.MustRegistry(
				mediaversion.Entry{Key: "tablet", Token: "t"},
				mediaversion.Entry{Key: "full"},
			)))

		res := resolve(t, rv, http.MethodGet, "/t/products")
		assert.Equal(t, "/products", res.Redirect)
		assert.Equal(t, "full", store.stored())
	})

	t.Run("strict mode keeps detected version", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, _ := newResolver(t, strictConfig(), store, mediaversion.DeviceDesktop)

		res := resolve(t, rv, http.MethodGet, "/m/products")
		assert.Equal(t, "/products", res.Redirect)
		assert.Equal(t, mediaversion.ReasonStrictSession, res.Reason)
		assert.Equal(t, "full", store.stored())
	})
}

func TestResolve_StaleSession(t *testing.T) {
	t.Parallel()

	store := &memStore{version: "watch"}
	rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceDesktop)

	res := resolve(t, rv, http.MethodGet, "/products")
	assert.Empty(t, res.Session)
	assert.Equal(t, "full", res.Version)
	assert.Equal(t, int32(1), c.calls.Load(), "stale value triggers detection")
	assert.Equal(t, "full", store.stored())
}

func TestResolve_NonGetRequests(t *testing.T) {
	t.Parallel()

	t.Run("pinned to session", func(t *testing.T) {
		t.Parallel()
		store := &memStore{version: "mobile"}
		rv, _ := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceDesktop)

		res := resolve(t, rv, http.MethodPost, "/t/orders")
		assert.Equal(t, "/m/orders", res.Redirect)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Equal(t, mediaversion.ReasonGetOnly, res.Reason)
		assert.Zero(t, store.saves)
	})

	t.Run("no session means no detection", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodPost, "/t/orders")
		assert.Equal(t, "tablet", res.Version)
		assert.Empty(t, res.Redirect)
		assert.Zero(t, c.calls.Load())
		assert.Zero(t, store.saves)
	})

	t.Run("head counts as get", func(t *testing.T) {
		t.Parallel()
		store := &memStore{}
		rv, c := newResolver(t, mediaversion.DefaultConfig(), store, mediaversion.DeviceMobile)

		res := resolve(t, rv, http.MethodHead, "/products")
		assert.Equal(t, "/m/products", res.Redirect)
		assert.Equal(t, int32(1), c.calls.Load())
	})

	t.Run("all methods when get only is off", func(t *testing.T) {
		t.Parallel()
		cfg := mediaversion.DefaultConfig()
		cfg.RouteGetRequestsOnly = false
		store := &memStore{version: "mobile"}
		rv, _ := newResolver(t, cfg, store, mediaversion.DeviceDesktop)

		res := resolve(t, rv, http.MethodPost, "/t/orders")
		assert.Equal(t, "tablet", res.Version)
		assert.Empty(t, res.Redirect)
		assert.Equal(t, "tablet", store.stored())
	})
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	for _, strict := range []bool{false, true} {
		cfg := mediaversion.DefaultConfig()
		cfg.StrictSessionMode = strict
		for _, class := range []mediaversion.DeviceClass{mediaversion.DeviceMobile, mediaversion.DeviceTablet, mediaversion.DeviceDesktop} {
			for _, target := range []string{"/", "/products?a=1", "/m/products", "/t/x/y?switch_media_version=mobile"} {
				store := &memStore{}
				rv, _ := newResolver(t, cfg, store, class)

				first := resolve(t, rv, http.MethodGet, target)
				next := target
				if first.Redirected() {
					next = first.Redirect
				}
				second := resolve(t, rv, http.MethodGet, next)
				assert.Empty(t, second.Redirect, "strict=%v class=%s target=%s", strict, class, target)
				assert.Equal(t, first.Version, second.Version, "strict=%v class=%s target=%s", strict, class, target)
			}
		}
	}
}

func TestResolve_Faults(t *testing.T) {
	t.Parallel()

	t.Run("classifier error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		rv, err := mediaversion.NewResolver(mediaversion.DefaultConfig(),
			mediaversion.WithSessionStore(&memStore{}),
			mediaversion.WithClassifier(mediaversion.ClassifierFunc(func(context.Context, string) (mediaversion.DeviceClass, error) {
				return "", boom
			})),
		)
		require.NoError(t, err)

		_, err = rv.Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, mediaversion.ErrClassifierFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("classifier timeout", func(t *testing.T) {
		t.Parallel()
		cfg := mediaversion.DefaultConfig()
		cfg.ClassifierTimeout = 5 * time.Millisecond
		rv, err := mediaversion.NewResolver(cfg,
			mediaversion.WithSessionStore(&memStore{}),
			mediaversion.WithClassifier(mediaversion.ClassifierFunc(func(ctx context.Context, _ string) (mediaversion.DeviceClass, error) {
				<-ctx.Done()
				time.Sleep(5 * time.Millisecond)
				return mediaversion.DeviceMobile, nil
			})),
		)
		require.NoError(t, err)

		_, err = rv.Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, mediaversion.ErrClassifierFailed)
		assert.ErrorIs(t, err, mediaversion.ErrClassifierTimeout)
	})

	t.Run("session load", func(t *testing.T) {
		t.Parallel()
		rv, _ := newResolver(t, mediaversion.DefaultConfig(), &memStore{loadErr: errors.New("down")}, mediaversion.DeviceDesktop)
		_, err := rv.Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, mediaversion.ErrSessionFailed)
	})

	t.Run("session save", func(t *testing.T) {
		t.Parallel()
		rv, _ := newResolver(t, mediaversion.DefaultConfig(), &memStore{saveErr: errors.New("down")}, mediaversion.DeviceDesktop)
		_, err := rv.Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?switch_media_version=mobile", nil))
		assert.ErrorIs(t, err, mediaversion.ErrSessionFailed)
	})
}

type recordingObserver struct {
	mu       sync.Mutex
	resolved []mediaversion.Result
	failed   []error
}

func (o *recordingObserver) Resolved(_ context.Context, res mediaversion.Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resolved = append(o.resolved, res)
}

func (o *recordingObserver) Failed(_ context.Context, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, err)
}

func TestResolve_Observer(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	rv, _ := newResolver(t, mediaversion.DefaultConfig(), &memStore{}, mediaversion.DeviceMobile, mediaversion.WithObserver(obs))

	resolve(t, rv, http.MethodGet, "/")
	require.Len(t, obs.resolved, 1)
	assert.Equal(t, "mobile", obs.resolved[0].Version)
	assert.Equal(t, "/m", obs.resolved[0].Redirect)
	assert.Empty(t, obs.failed)
}
