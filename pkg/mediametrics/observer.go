// Package mediametrics exports media version resolution outcomes to Prometheus.
package mediametrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
)

// Observer implements mediaversion.Observer with Prometheus counters.
type Observer struct {
	resolutions *prometheus.CounterVec
	detections  *prometheus.CounterVec
	faults      *prometheus.CounterVec
}

var _ mediaversion.Observer = (*Observer)(nil)

// New registers the counters on reg. A nil reg uses the default registerer.
func New(namespace string, reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Observer{
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_version_resolutions_total",
			Help:      "Resolved requests by media version, deciding rule and outcome",
		}, []string{"version", "reason", "redirect"}),
		detections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_version_detections_total",
			Help:      "First-visit device detections by class and agreement with the URL",
		}, []string{"class", "result"}),
		faults: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_version_faults_total",
			Help:      "Resolution faults by kind",
		}, []string{"kind"}),
	}
}

// Resolved counts one resolution.
func (o *Observer) Resolved(_ context.Context, res mediaversion.Result) {
	o.resolutions.WithLabelValues(res.Version, string(res.Reason), strconv.FormatBool(res.Redirected())).Inc()
	if res.Detection != mediaversion.DetectionUnknown {
		o.detections.WithLabelValues(string(res.Class), res.Detection.String()).Inc()
	}
}

// Failed counts one fault.
func (o *Observer) Failed(_ context.Context, err error) {
	o.faults.WithLabelValues(faultKind(err)).Inc()
}

func faultKind(err error) string {
	switch {
	case errors.Is(err, mediaversion.ErrClassifierTimeout):
		return "classifier_timeout"
	case errors.Is(err, mediaversion.ErrClassifierFailed):
		return "classifier"
	case errors.Is(err, mediaversion.ErrSessionFailed):
		return "session"
	default:
		return "other"
	}
}
