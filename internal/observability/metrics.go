package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// ingest pipeline and summary serving.
type Metrics struct {
	RowsIngested      *prometheus.CounterVec // labels: year
	RowsSkipped       *prometheus.CounterVec // labels: year, reason={empty_province,placeholder_code,rejected}
	CellsZeroFilled   *prometheus.CounterVec // labels: year
	CellsClamped      *prometheus.CounterVec // labels: year
	DuplicatesDropped *prometheus.CounterVec // labels: year

	IngestDuration    prometheus.Histogram
	IngestRuns        *prometheus.CounterVec // labels: outcome={success,error}
	DatasetRows       prometheus.Gauge
	SummarizeDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsIngested,
		m.RowsSkipped,
		m.CellsZeroFilled,
		m.CellsClamped,
		m.DuplicatesDropped,
		m.IngestDuration,
		m.IngestRuns,
		m.DatasetRows,
		m.SummarizeDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bencana",
			Name:      "rows_ingested_total",
			Help:      "Cleaned records added to the canonical table, by source year.",
		}, []string{"year"}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bencana",
			Name:      "rows_skipped_total",
			Help:      "Rows dropped during cleaning, by year and reason.",
		}, []string{"year", "reason"}),
		CellsZeroFilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bencana",
			Name:      "cells_zero_filled_total",
			Help:      "Unparseable count cells coerced to zero, by year.",
		}, []string{"year"}),
		CellsClamped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bencana",
			Name:      "cells_clamped_total",
			Help:      "Negative count cells clamped to zero, by year.",
		}, []string{"year"}),
		DuplicatesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bencana",
			Name:      "duplicates_dropped_total",
			Help:      "Exact-duplicate rows dropped during cleaning, by year.",
		}, []string{"year"}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bencana",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a complete read-normalize-clean-merge run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bencana",
			Name:      "ingest_runs_total",
			Help:      "Ingest attempts by outcome.",
		}, []string{"outcome"}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bencana",
			Name:      "dataset_rows",
			Help:      "Records in the current canonical table.",
		}),
		SummarizeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bencana",
			Name:      "summarize_duration_seconds",
			Help:      "Duration of one summary computation.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}
}
