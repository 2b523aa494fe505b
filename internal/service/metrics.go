package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"resumebuilder/internal/model"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics holds the pipeline counters. A nil *Metrics records nothing.
type Metrics struct {
	generated *prometheus.CounterVec
	exports   *prometheus.CounterVec
}

// NewMetrics creates the pipeline counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumebuilder_documents_generated_total",
				Help: "Generation requests by document kind and outcome (success or failure kind).",
			},
			[]string{"kind", "outcome"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumebuilder_pdf_exports_total",
				Help: "PDF exports by outcome.",
			},
			[]string{"outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.generated, m.exports} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeGeneration(kind model.DocumentKind, outcome string) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(kind.Slug(), outcome).Inc()
}

func (m *Metrics) observeExport(outcome string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(outcome).Inc()
}
