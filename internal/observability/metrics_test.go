package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshotCopiesCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/vehicles/", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/vehicles/", "GET", 200, 30*time.Millisecond)
	m.RecordError("/login/", "POST", "AUTHENTICATION_FAILED")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
	assert.InDelta(t, 20.0, snap.AvgLatencyMs, 0.01)
	assert.Equal(t, int64(2), snap.Requests["/vehicles/|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/login/|POST|AUTHENTICATION_FAILED"])

	snap.Requests["/vehicles/|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/vehicles/|GET|200"])
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "INTERNAL")
	assert.Equal(t, Snapshot{}, m.Snapshot())
}
