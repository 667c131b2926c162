// Package metrics exposes the Prometheus counters recorded while readings are
// computed, interpreted and exported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// Readings computed, labelled by whether the result was persisted.
	ReadingsComputed *prometheus.CounterVec

	// Interpretations served from the fallback entry, by pillar.
	InterpretationFallbacks *prometheus.CounterVec

	// PDF reports rendered, by outcome.
	ReportsRendered *prometheus.CounterVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReadingsComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mandala_readings_computed_total",
			Help: "Total numerology readings computed",
		}, []string{"persisted"}), // persisted: "true", "false"

		InterpretationFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mandala_interpretation_fallbacks_total",
			Help: "Interpretations served from the fallback entry because the number was outside the table",
		}, []string{"pillar"}),

		ReportsRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mandala_reports_rendered_total",
			Help: "Total PDF reports rendered by outcome",
		}, []string{"outcome"}), // outcome: "ok", "error"
	}
}

// IncReadingComputed records a computed reading.
func (m *Metrics) IncReadingComputed(persisted bool) {
	if m != nil {
		label := "false"
		if persisted {
			label = "true"
		}
		m.ReadingsComputed.WithLabelValues(label).Inc()
	}
}

// IncInterpretationFallback records an out-of-table interpretation lookup.
func (m *Metrics) IncInterpretationFallback(pillar string) {
	if m != nil {
		m.InterpretationFallbacks.WithLabelValues(pillar).Inc()
	}
}

// IncReportRendered records a report render attempt.
func (m *Metrics) IncReportRendered(err error) {
	if m != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		m.ReportsRendered.WithLabelValues(outcome).Inc()
	}
}
