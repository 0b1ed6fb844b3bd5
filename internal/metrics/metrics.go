// Package metrics provides roster counters backed by Prometheus.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the store operation counters.
type Metrics struct {
	loaded    prometheus.Gauge
	annotated prometheus.Counter
	filters   prometheus.Counter
	sorts     *prometheus.CounterVec
}

// New creates the roster metrics and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_persons_loaded",
			Help: "Number of persons held by the record store",
		}),
		annotated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_persons_annotated_total",
			Help: "Total number of persons stamped with a run date",
		}),
		filters: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_filter_requests_total",
			Help: "Total number of status filter requests",
		}),
		sorts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_sort_requests_total",
			Help: "Total number of sort requests by field",
		}, []string{"field"}),
	}

	for _, c := range []prometheus.Collector{m.loaded, m.annotated, m.filters, m.sorts} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: registering collector: %w", err)
		}
	}
	return m, nil
}

// SetLoaded records the current store size.
func (m *Metrics) SetLoaded(n int) {
	if m == nil {
		return
	}
	m.loaded.Set(float64(n))
}

// AddAnnotated adds n stamped persons.
func (m *Metrics) AddAnnotated(n int) {
	if m == nil {
		return
	}
	m.annotated.Add(float64(n))
}

// IncFilter counts one filter request.
func (m *Metrics) IncFilter() {
	if m == nil {
		return
	}
	m.filters.Inc()
}

// IncSort counts one sort request on field.
func (m *Metrics) IncSort(field string) {
	if m == nil {
		return
	}
	m.sorts.WithLabelValues(field).Inc()
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gathering: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
