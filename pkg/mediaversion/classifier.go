package mediaversion

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/mediakit/pkg/cache"
	"github.com/dmitrymomot/mediakit/pkg/useragent"
)

// DeviceClass is the coarse device category a classifier reports.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
	DeviceDesktop DeviceClass = "desktop"
)

// Classifier maps a user-agent string to exactly one device class.
type Classifier interface {
	Classify(ctx context.Context, userAgent string) (DeviceClass, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, userAgent string) (DeviceClass, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, userAgent string) (DeviceClass, error) {
	return f(ctx, userAgent)
}

// UserAgentClassifier returns a Classifier backed by the useragent package.
// Bots, TVs, consoles and unknown agents are reported as desktop.
func UserAgentClassifier() Classifier {
	return ClassifierFunc(func(ctx context.Context, userAgent string) (DeviceClass, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		switch useragent.Classify(userAgent) {
		case useragent.DeviceTypeMobile:
			return DeviceMobile, nil
		case useragent.DeviceTypeTablet:
			return DeviceTablet, nil
		default:
			return DeviceDesktop, nil
		}
	})
}

// CachedClassifier remembers the class of the last size user agents.
// Failed classifications are not cached. A non-positive size returns c as is.
func CachedClassifier(c Classifier, size int) Classifier {
	classes, err := cache.New[string, DeviceClass](size)
	if err != nil {
		return c
	}
	return ClassifierFunc(func(ctx context.Context, userAgent string) (DeviceClass, error) {
		if class, ok := classes.Get(userAgent); ok {
			return class, nil
		}
		class, err := c.Classify(ctx, userAgent)
		if err != nil {
			return "", err
		}
		classes.Add(userAgent, class)
		return class, nil
	})
}

// classify runs the classifier once under the configured timeout.
func (rv *Resolver) classify(ctx context.Context, userAgent string) (DeviceClass, error) {
	ctx, cancel := context.WithTimeout(ctx, rv.cfg.ClassifierTimeout)
	defer cancel()

	type answer struct {
		class DeviceClass
		err   error
	}
	ch := make(chan answer, 1)
	go func() {
		class, err := rv.classifier.Classify(ctx, userAgent)
		ch <- answer{class: class, err: err}
	}()

	select {
	case a := <-ch:
		if a.err != nil {
			return "", errors.Join(ErrClassifierFailed, a.err)
		}
		return a.class, nil
	case <-ctx.Done():
		return "", errors.Join(ErrClassifierFailed, ErrClassifierTimeout, ctx.Err())
	}
}

// versionForClass picks the first registered key for a device class:
// mobile, then tablet, then the default version.
func (rv *Resolver) versionForClass(class DeviceClass) string {
	c := DeviceClass(strings.ToLower(string(class)))
	if c == DeviceMobile {
		if key, ok := rv.registry.Canonical(VersionMobile); ok {
			return key
		}
	}
	if c == DeviceTablet {
		if key, ok := rv.registry.Canonical(VersionTablet); ok {
			return key
		}
	}
	return rv.registry.Default()
}
