// Package metrics exposes prometheus collectors for résumé analyses.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for ats_analyses_total.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AnalysisMetrics records the outcome of each analysis.
type AnalysisMetrics struct {
	analyses *prometheus.CounterVec
	score    prometheus.Histogram
	duration prometheus.Histogram
}

// New registers the analysis collectors on reg.
func New(reg prometheus.Registerer) (*AnalysisMetrics, error) {
	m := &AnalysisMetrics{
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ats_analyses_total",
				Help: "Total number of résumé analyses by outcome.",
			},
			[]string{"status"},
		),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ats_score",
			Help:    "Distribution of total ATS compatibility scores.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ats_analysis_duration_seconds",
			Help:    "Time spent analyzing a résumé, parsing included.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.analyses, m.score, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveSuccess records a completed analysis and its total score.
func (m *AnalysisMetrics) ObserveSuccess(score int, elapsed time.Duration) {
	m.analyses.WithLabelValues(StatusSuccess).Inc()
	m.score.Observe(float64(score))
	m.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records an analysis that returned an error.
func (m *AnalysisMetrics) ObserveFailure(elapsed time.Duration) {
	m.analyses.WithLabelValues(StatusError).Inc()
	m.duration.Observe(elapsed.Seconds())
}
