package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.Submitted("Auto-Rejected")
	m.Submitted("Auto-Rejected")
	m.Refused("duplicate")
	m.Upload("ok")
	m.StatusChanged("shortlisted")
	m.Published()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ApplicationsSubmitted.WithLabelValues("Auto-Rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ApplicationsRejected.WithLabelValues("duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResumeUploads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusChanges.WithLabelValues("shortlisted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PostingsPublished))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Submitted("x")
		m.Refused("x")
		m.Upload("x")
		m.StatusChanged("x")
		m.Published()
	})
}
