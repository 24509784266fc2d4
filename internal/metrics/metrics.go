// Package metrics provides lightweight in-process counters using
// atomics. For production observability, export the snapshot to
// Prometheus or similar.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds application counters. All methods are safe for
// concurrent use and tolerate a nil receiver, so instrumentation can
// be optional.
type Metrics struct {
	rpcCallsTotal   atomic.Int64
	rpcErrorsTotal  atomic.Int64
	rpcLatencyNanos atomic.Int64

	reviewsAccepted atomic.Int64
	reviewsRejected atomic.Int64
	reviewsSkipped  atomic.Int64

	broadcastsTotal atomic.Int64
	simulationsRun  atomic.Int64
}

// New creates a metrics instance.
func New() *Metrics {
	return &Metrics{}
}

// RecordRPCCall records one RPC round trip.
func (m *Metrics) RecordRPCCall(duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.rpcCallsTotal.Add(1)
	m.rpcLatencyNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.rpcErrorsTotal.Add(1)
	}
}

// RecordReview records a review decision.
func (m *Metrics) RecordReview(accepted bool) {
	if m == nil {
		return
	}
	if accepted {
		m.reviewsAccepted.Add(1)
	} else {
		m.reviewsRejected.Add(1)
	}
}

// RecordReviewSkipped records a fast-mode bypass.
func (m *Metrics) RecordReviewSkipped() {
	if m == nil {
		return
	}
	m.reviewsSkipped.Add(1)
}

// RecordBroadcast records a successful broadcast.
func (m *Metrics) RecordBroadcast() {
	if m == nil {
		return
	}
	m.broadcastsTotal.Add(1)
}

// RecordSimulation records a completed simulation.
func (m *Metrics) RecordSimulation() {
	if m == nil {
		return
	}
	m.simulationsRun.Add(1)
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	RPCCallsTotal   int64
	RPCErrorsTotal  int64
	RPCLatencyNanos int64
	ReviewsAccepted int64
	ReviewsRejected int64
	ReviewsSkipped  int64
	BroadcastsTotal int64
	SimulationsRun  int64
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		RPCCallsTotal:   m.rpcCallsTotal.Load(),
		RPCErrorsTotal:  m.rpcErrorsTotal.Load(),
		RPCLatencyNanos: m.rpcLatencyNanos.Load(),
		ReviewsAccepted: m.reviewsAccepted.Load(),
		ReviewsRejected: m.reviewsRejected.Load(),
		ReviewsSkipped:  m.reviewsSkipped.Load(),
		BroadcastsTotal: m.broadcastsTotal.Load(),
		SimulationsRun:  m.simulationsRun.Load(),
	}
}
