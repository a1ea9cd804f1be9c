package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe("Gs2Timer", "GetTimer", "GET", 200, 10*time.Millisecond)
	m.Observe("Gs2Timer", "GetTimer", "GET", 200, 20*time.Millisecond)
	m.Observe("Gs2Timer", "GetTimer", "GET", 404, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("Gs2Timer", "GetTimer", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("Gs2Timer", "GetTimer", "GET", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestObserve_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("Gs2Timer", "GetTimer", "GET", 200, time.Millisecond)
	})
}
