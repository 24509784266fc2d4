package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecording(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordRPCCall(10*time.Millisecond, nil)
	m.RecordRPCCall(5*time.Millisecond, errors.New("boom"))
	m.RecordReview(true)
	m.RecordReview(false)
	m.RecordReviewSkipped()
	m.RecordBroadcast()
	m.RecordSimulation()

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.RPCCallsTotal)
	assert.Equal(t, int64(1), snap.RPCErrorsTotal)
	assert.Equal(t, int64(15*time.Millisecond), snap.RPCLatencyNanos)
	assert.Equal(t, int64(1), snap.ReviewsAccepted)
	assert.Equal(t, int64(1), snap.ReviewsRejected)
	assert.Equal(t, int64(1), snap.ReviewsSkipped)
	assert.Equal(t, int64(1), snap.BroadcastsTotal)
	assert.Equal(t, int64(1), snap.SimulationsRun)
}

func TestMetricsNilReceiver(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRPCCall(time.Millisecond, nil)
	m.RecordReview(true)
	m.RecordReviewSkipped()
	m.RecordBroadcast()
	m.RecordSimulation()
	assert.Equal(t, Snapshot{}, m.Snapshot())
}

func TestMetricsConcurrent(t *testing.T) {
	t.Parallel()

	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordRPCCall(time.Microsecond, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), m.Snapshot().RPCCallsTotal)
}
