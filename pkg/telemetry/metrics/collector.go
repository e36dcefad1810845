package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes recorded by the collector. The failure outcomes
// mirror the validation error kinds.
const (
	OutcomeSuccess         = "success"
	OutcomeMissingRequired = "missing_required"
	OutcomeTypeCoercion    = "type_coercion"
	OutcomeConstraint      = "constraint"
)

const namespace = "lazyenv"

// Collector records container resolution metrics.
type Collector struct {
	resolutionsTotal *prometheus.CounterVec
	cacheHitsTotal   *prometheus.CounterVec
	overridesTotal   *prometheus.CounterVec
	fields           *prometheus.GaugeVec
}

// NewCollector creates a collector and registers its metrics with the
// provided registry. If registry is nil a private registry is used, which
// keeps tests isolated from the default global registry.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total field resolution attempts by outcome",
			},
			[]string{"container", "outcome"},
		),

		cacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Total field reads served from the resolution cache",
			},
			[]string{"container"},
		),

		overridesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "overrides_total",
				Help:      "Total explicit field overrides",
			},
			[]string{"container"},
		),

		fields: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fields",
				Help:      "Number of declared fields per container",
			},
			[]string{"container"},
		),
	}

	registry.MustRegister(
		c.resolutionsTotal,
		c.cacheHitsTotal,
		c.overridesTotal,
		c.fields,
	)

	return c
}

// RecordResolution records one resolution attempt and its outcome.
func (c *Collector) RecordResolution(container, outcome string) {
	if c == nil {
		return
	}
	c.resolutionsTotal.WithLabelValues(container, outcome).Inc()
}

// RecordCacheHit records a read served from the field cache.
func (c *Collector) RecordCacheHit(container string) {
	if c == nil {
		return
	}
	c.cacheHitsTotal.WithLabelValues(container).Inc()
}

// RecordOverride records an explicit field override.
func (c *Collector) RecordOverride(container string) {
	if c == nil {
		return
	}
	c.overridesTotal.WithLabelValues(container).Inc()
}

// SetFieldCount records the number of declared fields for a container.
func (c *Collector) SetFieldCount(container string, n int) {
	if c == nil {
		return
	}
	c.fields.WithLabelValues(container).Set(float64(n))
}
