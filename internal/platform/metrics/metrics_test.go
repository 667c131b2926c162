package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncReadingComputed(true)
	m.IncReadingComputed(false)
	m.IncReadingComputed(false)
	m.IncInterpretationFallback("divineGift")
	m.IncReportRendered(nil)
	m.IncReportRendered(errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReadingsComputed.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReadingsComputed.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InterpretationFallbacks.WithLabelValues("divineGift")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsRendered.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsRendered.WithLabelValues("error")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncReadingComputed(true)
		m.IncInterpretationFallback("essence")
		m.IncReportRendered(nil)
	})
}
