package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sortsim/sortsim/sim/trace"
)

// Metrics holds the collectors updated by every sort request.
type Metrics struct {
	SortRuns    *prometheus.CounterVec
	TraceSteps  *prometheus.CounterVec
	TraceLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Panics if any of them is already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SortRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortsim_sort_runs_total",
				Help: "Total number of sort runs served",
			},
			[]string{"algorithm"},
		),
		TraceSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortsim_trace_steps_total",
				Help: "Total number of trace steps recorded, by step kind",
			},
			[]string{"algorithm", "kind"},
		),
		TraceLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sortsim_trace_length",
				Help:    "Number of steps per recorded trace",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
	reg.MustRegister(m.SortRuns, m.TraceSteps, m.TraceLength)
	return m
}

// Observe records one completed trace.
func (m *Metrics) Observe(t *trace.Trace) {
	m.SortRuns.WithLabelValues(t.Algorithm).Inc()
	s := trace.Summarize(t)
	for kind, n := range map[trace.StepKind]int{
		trace.KindCompare:   s.Comparisons,
		trace.KindMutate:    s.Mutations,
		trace.KindPartition: s.Partitions,
		trace.KindPivot:     s.Pivots,
	} {
		if n > 0 {
			m.TraceSteps.WithLabelValues(t.Algorithm, string(kind)).Add(float64(n))
		}
	}
	m.TraceLength.Observe(float64(t.Len()))
}
