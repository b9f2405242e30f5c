// Package prom records session lifecycle metrics with Prometheus.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mysessions"

type metrics struct {
	sessionsCreated   *prometheus.CounterVec
	sessionsDeleted   prometheus.Counter
	endpointExhausted *prometheus.CounterVec
	capacityExhausted prometheus.Counter
	acquireFailed     *prometheus.CounterVec
	releaseFailed     prometheus.Counter
}

// NewMetrics registers the session metrics on reg and returns an interfaces.Metrics implementation.
// Panics if the metrics are already registered on reg.
func NewMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		sessionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Sessions created, by the management API the instance was leased from.",
		}, []string{"endpoint"}),
		sessionsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_deleted_total",
			Help:      "Sessions deleted after their instance was released.",
		}),
		endpointExhausted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endpoint_no_capacity_total",
			Help:      "Acquisition attempts answered with no capacity, by management API.",
		}, []string{"endpoint"}),
		capacityExhausted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_capacity_total",
			Help:      "Session creations rejected because every management API was out of instances.",
		}),
		acquireFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acquire_errors_total",
			Help:      "Acquisition attempts that failed for a reason other than capacity, by management API.",
		}, []string{"endpoint"}),
		releaseFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "release_errors_total",
			Help:      "Instance releases that failed; the lease was kept.",
		}),
	}
}

func (m *metrics) SessionCreated(endpointURL string) {
	m.sessionsCreated.WithLabelValues(endpointURL).Inc()
}

func (m *metrics) SessionDeleted() {
	m.sessionsDeleted.Inc()
}

func (m *metrics) EndpointExhausted(endpointURL string) {
	m.endpointExhausted.WithLabelValues(endpointURL).Inc()
}

func (m *metrics) CapacityExhausted() {
	m.capacityExhausted.Inc()
}

func (m *metrics) AcquireFailed(endpointURL string) {
	m.acquireFailed.WithLabelValues(endpointURL).Inc()
}

func (m *metrics) ReleaseFailed() {
	m.releaseFailed.Inc()
}
