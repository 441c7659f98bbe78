package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/mediakit/pkg/clientip"
	"github.com/dmitrymomot/mediakit/pkg/cookie"
	"github.com/dmitrymomot/mediakit/pkg/environment"
	"github.com/dmitrymomot/mediakit/pkg/httpserver"
	"github.com/dmitrymomot/mediakit/pkg/logger"
	"github.com/dmitrymomot/mediakit/pkg/mediametrics"
	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
	"github.com/dmitrymomot/mediakit/pkg/redis"
	"github.com/dmitrymomot/mediakit/pkg/requestid"
	"github.com/dmitrymomot/mediakit/pkg/routes"
	"github.com/dmitrymomot/mediakit/pkg/session"
)

var (
	errNoCookieSecret = errors.New("mediademo: COOKIE_SECRETS is required outside development")
	errUnknownStore   = errors.New("mediademo: unknown session store")
)

// app is the wired demo: handler plus everything that must be closed.
type app struct {
	handler  http.Handler
	resolver *mediaversion.Resolver
	routes   *routes.Table
	closers  []func() error
}

// Close releases stores and connections in reverse order of creation.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func newApp(ctx context.Context, cfg Config, log *slog.Logger, reg *prometheus.Registry) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	env := environment.Parse(cfg.Env)
	if strings.TrimSpace(cfg.Cookie.Secrets) == "" {
		if env != environment.Development {
			return nil, errNoCookieSecret
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.Cookie.Secrets = secret
		log.WarnContext(ctx, "COOKIE_SECRETS not set, sessions will not survive a restart")
	}
	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return nil, err
	}

	var checks []httpserver.Check
	var store session.Store
	switch strings.ToLower(cfg.SessionStore) {
	case storeMemory, "":
		store = session.NewMemoryStore(cfg.Session.CleanupInterval)
	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		storage := redis.NewStorageWithConfig(client, cfg.Redis)
		a.closers = append(a.closers, storage.Close)
		checks = append(checks, httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)})
		store = session.NewRedisStore(storage)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownStore, cfg.SessionStore)
	}

	sessions := session.NewFromConfig(cfg.Session,
		session.WithStore(store),
		session.WithCookieManager(cookies),
	)
	a.closers = append(a.closers, sessions.Close)

	opts := []mediaversion.Option{
		mediaversion.WithSessionManager(sessions),
		mediaversion.WithLogger(log.With(logger.Component("mediaversion"))),
		mediaversion.WithObserver(mediametrics.New("mediademo", reg)),
		mediaversion.WithErrorHandler(resolutionErrorHandler(log)),
	}
	if cfg.VersionsFile != "" {
		data, err := os.ReadFile(cfg.VersionsFile)
		if err != nil {
			return nil, fmt.Errorf("mediademo: read versions file: %w", err)
		}
		registry, err := mediaversion.ParseRegistryYAML(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mediaversion.WithRegistry(registry))
	}

	cfg.Media.SkipPaths = append(cfg.Media.SkipPaths, "/health/", cfg.MetricsPath)
	rv, err := mediaversion.NewResolver(cfg.Media, opts...)
	if err != nil {
		return nil, err
	}
	a.resolver = rv

	table := routes.New("")
	newShop(rv, table, sessions, log).register()
	a.routes = table

	router := chi.NewRouter()
	router.Use(
		environment.Middleware(env),
		requestid.Middleware,
		clientip.Middleware(),
		middleware.Recoverer,
		sessions.Middleware,
		rv.Middleware,
	)
	table.Mount(router)
	router.Get("/health/live", httpserver.HealthCheckHandler(log, 0))
	router.Get("/health/ready", httpserver.HealthCheckHandler(log, cfg.HTTP.ReadyTimeout, checks...))
	router.Handle(cfg.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	a.handler = router
	return a, nil
}

// resolutionErrorHandler answers resolver faults with 500. Development
// builds show the cause.
func resolutionErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "resolve media version", logger.Path(r.URL.Path), logger.Error(err))
		msg := http.StatusText(http.StatusInternalServerError)
		if environment.IsDevelopment(r.Context()) {
			msg = err.Error()
		}
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

// newRegistry returns a metrics registry with runtime collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
