package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveSuccess(72, 150*time.Millisecond)
	m.ObserveSuccess(40, 80*time.Millisecond)
	m.ObserveFailure(10 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.analyses.WithLabelValues(StatusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.analyses.WithLabelValues(StatusError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.score))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		switch mf.GetName() {
		case "ats_score":
			h := mf.GetMetric()[0].GetHistogram()
			assert.Equal(t, uint64(2), h.GetSampleCount())
			assert.InDelta(t, 112, h.GetSampleSum(), 0.001)
		case "ats_analysis_duration_seconds":
			assert.Equal(t, uint64(3), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
