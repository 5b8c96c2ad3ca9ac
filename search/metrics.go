package search

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of foliar_triangulations_analyzed_total.
const (
	OutcomeTaut    = "taut"
	OutcomeNone    = "none"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

// Metrics holds the search counters. A nil *Metrics records nothing.
type Metrics struct {
	orientations prometheus.Counter
	taut         prometheus.Counter
	analyzed     *prometheus.CounterVec
}

// NewMetrics creates the search counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		orientations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foliar",
			Name:      "orientations_enumerated_total",
			Help:      "Total number of cycle-free edge orientations drawn from the SAT backend",
		}),
		taut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foliar",
			Name:      "taut_orientations_total",
			Help:      "Total number of edge orientations found to give a taut foliation",
		}),
		analyzed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "foliar",
				Name:      "triangulations_analyzed_total",
				Help:      "Total number of triangulations analyzed, by outcome",
			},
			[]string{"outcome"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.orientations, m.taut, m.analyzed} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering search metrics")
		}
	}

	return m, nil
}

func (m *Metrics) orientation() {
	if m != nil {
		m.orientations.Inc()
	}
}

func (m *Metrics) tautOrientation() {
	if m != nil {
		m.taut.Inc()
	}
}

func (m *Metrics) outcome(o string) {
	if m != nil {
		m.analyzed.WithLabelValues(o).Inc()
	}
}

// Collector returns the counter with the given fully-qualified name, for
// exposition and tests.
func (m *Metrics) Collector(name string) (prometheus.Collector, bool) {
	if m == nil {
		return nil, false
	}
	switch name {
	case "foliar_orientations_enumerated_total":
		return m.orientations, true
	case "foliar_taut_orientations_total":
		return m.taut, true
	case "foliar_triangulations_analyzed_total":
		return m.analyzed, true
	}

	return nil, false
}

// Outcome returns the analyzed-triangulations counter for one outcome label.
func (m *Metrics) Outcome(outcome string) (prometheus.Counter, bool) {
	if m == nil {
		return nil, false
	}
	c, err := m.analyzed.GetMetricWithLabelValues(outcome)
	if err != nil {
		return nil, false
	}

	return c, true
}
