// Package metrics exposes check and conversion failures as Prometheus counters.
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	params := source.New(src,
//		source.WithCallbacks(rec.Callback()),
//		source.WithConversionObserver(rec.ObserveConversion),
//	)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/paramkit/pkg/param"
	"github.com/dmitrymomot/paramkit/pkg/source"
)

const defaultNamespace = "paramkit"

// Recorder counts failures by check kind and conversion target.
type Recorder struct {
	checkFailures      *prometheus.CounterVec
	conversionFailures *prometheus.CounterVec
}

type Option func(*options)

type options struct {
	namespace   string
	constLabels prometheus.Labels
}

// WithNamespace replaces the "paramkit" metric name prefix.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithConstLabels attaches labels to both counters, e.g. the service name.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) { o.constLabels = labels }
}

// NewRecorder registers the counters on reg. It panics if they are already
// registered, like promauto.
func NewRecorder(reg prometheus.Registerer, opts ...Option) *Recorder {
	o := options{namespace: defaultNamespace}
	for _, opt := range opts {
		opt(&o)
	}

	factory := promauto.With(reg)
	return &Recorder{
		checkFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   o.namespace,
				Name:        "check_failures_total",
				Help:        "Total number of failed parameter checks",
				ConstLabels: o.constLabels,
			},
			[]string{"check"},
		),
		conversionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   o.namespace,
				Name:        "conversion_failures_total",
				Help:        "Total number of parameters that could not be converted to their target type",
				ConstLabels: o.constLabels,
			},
			[]string{"target"},
		),
	}
}

// Callback counts every failure it receives.
func (r *Recorder) Callback() param.Callback {
	return func(f param.Failure) {
		r.checkFailures.WithLabelValues(f.Check.String()).Inc()
	}
}

// ObserveConversion counts a failed conversion. It matches source.ConversionObserver.
func (r *Recorder) ObserveConversion(err *source.ConversionError) {
	if err == nil {
		return
	}
	r.conversionFailures.WithLabelValues(err.Target).Inc()
}

func (r *Recorder) CheckFailures(check param.Check) prometheus.Counter {
	return r.checkFailures.WithLabelValues(check.String())
}

func (r *Recorder) ConversionFailures(target string) prometheus.Counter {
	return r.conversionFailures.WithLabelValues(target)
}
