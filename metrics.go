package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
	outcomePanicked  = "panicked"
	outcomeCanceled  = "canceled"
)

// Metrics tracks generator lifecycles in Prometheus. It tracks:
//   - Generators started (counter)
//   - Values yielded (counter)
//   - Generators finished, by outcome (counter)
//   - Generators started and not yet finished (gauge)
//
// A nil *Metrics records nothing.
type Metrics struct {
	started  *prometheus.CounterVec
	values   *prometheus.CounterVec
	finished *prometheus.CounterVec
	active   *prometheus.GaugeVec
}

// NewMetrics creates the generator metrics and registers them with reg.
// A nil reg creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		started: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "generator_started_total",
			Help: "Total number of generators whose producer was started",
		}, []string{"name"}),
		values: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "generator_values_total",
			Help: "Total number of values yielded by generators",
		}, []string{"name"}),
		finished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "generator_finished_total",
			Help: "Total number of generators finished, by outcome",
		}, []string{"name", "outcome"}),
		active: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "generator_active",
			Help: "Current number of started generators that have not finished",
		}, []string{"name"}),
	}
}

// instruments holds the series of one generator name, resolved when the
// generator is created so that yielding does no label lookups.
type instruments struct {
	started  prometheus.Counter
	values   prometheus.Counter
	active   prometheus.Gauge
	finished map[string]prometheus.Counter
}

func (m *Metrics) bind(name string) *instruments {
	if m == nil {
		return nil
	}
	finished := make(map[string]prometheus.Counter, 4)
	for _, outcome := range []string{outcomeCompleted, outcomeFailed, outcomePanicked, outcomeCanceled} {
		finished[outcome] = m.finished.WithLabelValues(name, outcome)
	}
	return &instruments{
		started:  m.started.WithLabelValues(name),
		values:   m.values.WithLabelValues(name),
		active:   m.active.WithLabelValues(name),
		finished: finished,
	}
}

func (i *instruments) start() {
	if i == nil {
		return
	}
	i.started.Inc()
	i.active.Inc()
}

func (i *instruments) yield() {
	if i == nil {
		return
	}
	i.values.Inc()
}

func (i *instruments) finish(outcome string) {
	if i == nil {
		return
	}
	i.finished[outcome].Inc()
	i.active.Dec()
}
