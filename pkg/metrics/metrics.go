// Package metrics exposes request identifier lifecycle counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/reqid/pkg/requestid"
)

const (
	namespace = "requestid"

	boundTotalMetricName    = "bound_total"
	failuresTotalMetricName = "generator_failures_total"
	activeScopesMetricName  = "active_scopes"
)

// Observer implements requestid.Observer on top of Prometheus collectors.
type Observer struct {
	bound    *prometheus.CounterVec
	failures *prometheus.CounterVec
	active   prometheus.Gauge
}

var _ requestid.Observer = (*Observer)(nil)

// NewObserver registers the collectors with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Observer{
		bound: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      boundTotalMetricName,
				Help:      "A counter of identifiers bound to requests.",
			},
			[]string{"strategy"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      failuresTotalMetricName,
				Help:      "A counter of requests rejected because no identifier could be generated.",
			},
			[]string{"strategy"},
		),
		active: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      activeScopesMetricName,
				Help:      "A gauge of request scopes currently bound and not yet finalized.",
			},
		),
	}
}

func (o *Observer) Bound(s requestid.Strategy) {
	o.bound.WithLabelValues(string(s)).Inc()
	o.active.Inc()
}

func (o *Observer) Failed(s requestid.Strategy) {
	o.failures.WithLabelValues(string(s)).Inc()
}

func (o *Observer) Released() {
	o.active.Dec()
}
