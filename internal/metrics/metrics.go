package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

type Metrics struct {
	registry            *prometheus.Registry
	enrichments         *prometheus.CounterVec
	enrichmentDuration  prometheus.Histogram
	categorySuggestions *prometheus.CounterVec
	pipelineRuns        prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		enrichments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cluedin_enrichments_total",
				Help: "Per-event summary calls by outcome",
			},
			[]string{"outcome"},
		),
		enrichmentDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cluedin_enrichment_duration_seconds",
				Help:    "Duration of a single summary call",
				Buckets: prometheus.DefBuckets,
			},
		),
		categorySuggestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cluedin_category_suggestions_total",
				Help: "Category suggestion calls by outcome",
			},
			[]string{"outcome"},
		),
		pipelineRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cluedin_pipeline_runs_total",
				Help: "Number of enriched event retrievals",
			},
		),
	}

	m.registry.MustRegister(
		m.enrichments,
		m.enrichmentDuration,
		m.categorySuggestions,
		m.pipelineRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveEnrichment(outcome string, elapsed time.Duration) {
	m.enrichments.WithLabelValues(outcome).Inc()
	m.enrichmentDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveCategorySuggestion(outcome string) {
	m.categorySuggestions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePipelineRun() {
	m.pipelineRuns.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
