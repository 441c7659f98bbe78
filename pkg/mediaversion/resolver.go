package mediaversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mediakit/pkg/logger"
	"github.com/dmitrymomot/mediakit/pkg/session"
)

// Detection tells whether the version came from a first device detection
// and whether that detection agreed with the URL.
type Detection int

const (
	// DetectionUnknown means a stored version existed, nothing was detected
	DetectionUnknown Detection = iota
	DetectionMatched
	DetectionMismatched
)

func (d Detection) String() string {
	switch d {
	case DetectionMatched:
		return "matched"
	case DetectionMismatched:
		return "mismatched"
	default:
		return "unknown"
	}
}

// Reason names the rule that picked the version of a request.
type Reason string

const (
	ReasonSingleVersion Reason = "single_version"
	ReasonSwitch        Reason = "switch"
	ReasonDetection     Reason = "detection"
	ReasonStrictSession Reason = "strict_session"
	ReasonGetOnly       Reason = "get_only"
	ReasonURL           Reason = "url"
	ReasonSkipped       Reason = "skipped"
)

// Result is the outcome of resolving one request.
type Result struct {
	// Version is the authoritative version key, always registered
	Version string

	// Requested is the version the URL asked for
	Requested string

	// Session is the valid stored version before this request, if any
	Session string

	// Switch is the version requested by the switch parameter, if any
	Switch string

	Detection Detection
	Class     DeviceClass

	// Path is the application path without version token
	Path string

	// Redirect is the target URL, empty when the request is accepted
	Redirect   string
	StatusCode int

	Reason Reason
}

// Redirected reports whether the request must be answered with a redirect.
func (r Result) Redirected() bool {
	return r.Redirect != ""
}

// Observer is told about every resolution outcome and fault.
type Observer interface {
	Resolved(ctx context.Context, res Result)
	Failed(ctx context.Context, err error)
}

type noopObserver struct{}

func (noopObserver) Resolved(context.Context, Result) {}
func (noopObserver) Failed(context.Context, error)    {}

// Resolver decides the media version of every request and builds versioned
// URLs. It is safe for concurrent use.
type Resolver struct {
	cfg          Config
	registry     *Registry
	sessions     SessionStore
	manager      *session.Manager
	classifier   Classifier
	logger       *slog.Logger
	observer     Observer
	errorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// NewResolver validates cfg and builds a resolver.
func NewResolver(cfg Config, opts ...Option) (*Resolver, error) {
	rv := &Resolver{
		cfg:        cfg.withDefaults(),
		classifier: UserAgentClassifier(),
		logger:     logger.Discard(),
		observer:   noopObserver{},
	}
	for _, opt := range opts {
		opt(rv)
	}

	switch rv.cfg.Mode {
	case ModePath, ModeQuery:
	default:
		return nil, fmt.Errorf("%w: url mode %q", ErrInvalidMode, rv.cfg.Mode)
	}
	switch rv.cfg.TrailingSlash {
	case TrailingSlashRemove, TrailingSlashKeep:
	default:
		return nil, fmt.Errorf("%w: trailing slash %q", ErrInvalidMode, rv.cfg.TrailingSlash)
	}
	if rv.cfg.SwitchParam == rv.cfg.VersionParam {
		return nil, fmt.Errorf("%w: switch and version params are both %q", ErrInvalidMode, rv.cfg.VersionParam)
	}

	if rv.registry == nil {
		r, err := ParseRegistry(rv.cfg.Versions)
		if err != nil {
			return nil, err
		}
		rv.registry = r
	}
	if rv.cfg.Mode == ModePath && !rv.registry.hasUnprefixed() {
		return nil, ErrNoDefaultVersion
	}

	if rv.sessions == nil && rv.manager != nil {
		rv.sessions = NewSessionStore(rv.manager, rv.cfg.SessionTTL)
	}
	if rv.sessions == nil && rv.registry.IsMultiVersion() {
		return nil, ErrNoSessionStore
	}
	if rv.classifier == nil {
		rv.classifier = UserAgentClassifier()
	}
	if rv.cfg.ClassifierCacheSize > 0 {
		rv.classifier = CachedClassifier(rv.classifier, rv.cfg.ClassifierCacheSize)
	}
	if rv.errorHandler == nil {
		rv.errorHandler = rv.defaultErrorHandler
	}

	return rv, nil
}

// Registry returns the version registry.
func (rv *Resolver) Registry() *Registry { return rv.registry }

// Config returns the effective configuration.
func (rv *Resolver) Config() Config { return rv.cfg }

// Resolve decides the version of r. Session changes are written to w. A
// non-empty Result.Redirect means the caller must redirect and stop.
func (rv *Resolver) Resolve(w http.ResponseWriter, r *http.Request) (Result, error) {
	ctx := r.Context()
	res, err := rv.resolve(ctx, w, r, rv.Extract(r))
	if err != nil {
		rv.observer.Failed(ctx, err)
		rv.logger.ErrorContext(ctx, "media version resolution failed",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		return res, err
	}

	rv.observer.Resolved(ctx, res)
	rv.logger.DebugContext(ctx, "media version resolved",
		logger.MediaVersion(res.Version),
		logger.Reason(string(res.Reason)),
		logger.DeviceClass(string(res.Class)),
		logger.RedirectURL(res.Redirect),
	)
	return res, nil
}

func (rv *Resolver) resolve(ctx context.Context, w http.ResponseWriter, r *http.Request, req *Request) (Result, error) {
	res := Result{
		Version:   req.Requested,
		Requested: req.Requested,
		Switch:    req.Switch,
		Path:      req.Path,
		Reason:    ReasonURL,
	}

	if !rv.registry.IsMultiVersion() {
		res.Version = rv.registry.Default()
		res.Reason = ReasonSingleVersion
		return res, nil
	}

	eligible := req.IsGet() || !rv.cfg.RouteGetRequestsOnly

	if eligible && req.Switch != "" {
		if err := rv.save(ctx, w, r, req.Switch); err != nil {
			return res, err
		}
		res.Version = req.Switch
		res.Reason = ReasonSwitch
		rv.redirect(&res, req, req.Switch)
		return res, nil
	}

	stored, err := rv.load(ctx, r)
	if err != nil {
		return res, err
	}
	res.Session = stored

	resolved := stored
	if stored == "" {
		if !eligible {
			return res, nil
		}
		class, err := rv.classify(ctx, req.UserAgent)
		if err != nil {
			return res, err
		}
		res.Class = class
		resolved = rv.versionForClass(class)
		if resolved == req.Requested {
			res.Detection = DetectionMatched
		} else {
			res.Detection = DetectionMismatched
		}
	}

	target := req.Requested
	switch {
	case rv.cfg.StrictSessionMode && eligible:
		target, res.Reason = resolved, ReasonStrictSession
	case res.Detection == DetectionMismatched:
		target, res.Reason = resolved, ReasonDetection
	case !eligible && req.Requested != resolved:
		target, res.Reason = resolved, ReasonGetOnly
	}

	if eligible && target != stored {
		if err := rv.save(ctx, w, r, target); err != nil {
			return res, err
		}
	}

	res.Version = target
	if target != req.Requested {
		rv.redirect(&res, req, target)
	}
	return res, nil
}

func (rv *Resolver) redirect(res *Result, req *Request, target string) {
	if u := rv.redirectURL(req, target); u != "" {
		res.Redirect = u
		res.StatusCode = http.StatusSeeOther
	}
}

// load returns the stored version if it is still registered.
func (rv *Resolver) load(ctx context.Context, r *http.Request) (string, error) {
	rec, ok, err := rv.sessions.Load(ctx, r)
	if err != nil {
		return "", errors.Join(ErrSessionFailed, err)
	}
	if !ok {
		return "", nil
	}
	key, ok := rv.registry.Canonical(rec.Version)
	if !ok {
		rv.logger.DebugContext(ctx, "stale media version in session", slog.String("stored", rec.Version))
		return "", nil
	}
	return key, nil
}

func (rv *Resolver) save(ctx context.Context, w http.ResponseWriter, r *http.Request, key string) error {
	if err := rv.sessions.Save(ctx, w, r, Record{Version: key}); err != nil {
		return errors.Join(ErrSessionFailed, err)
	}
	return nil
}
