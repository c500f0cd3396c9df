package telemetry

import (
	"sync/atomic"
	"time"
)

// PollCounters tracks how a poller session is treating the engine.
// All fields are atomics so the pollers can record without locking and
// an HTTP handler can snapshot concurrently.
type PollCounters struct {
	polls          atomic.Uint64
	emptyPolls     atomic.Uint64
	staleFrames    atomic.Uint64
	delivered      atomic.Uint64
	timeouts       atomic.Uint64
	lastFrame      atomic.Int64
	lastPollMicros atomic.Int64
}

// PollSnapshot is the JSON-ready view of the counters.
type PollSnapshot struct {
	Polls          uint64 `json:"polls"`
	EmptyPolls     uint64 `json:"emptyPolls"`
	StaleFrames    uint64 `json:"staleFrames"`
	Delivered      uint64 `json:"delivered"`
	Timeouts       uint64 `json:"timeouts"`
	LastFrame      int64  `json:"lastFrame"`
	LastPollMicros int64  `json:"lastPollMicros"`
}

// NewPollCounters creates a zeroed counter set.
func NewPollCounters() *PollCounters {
	return &PollCounters{}
}

// RecordPoll notes one boundary query and its duration.
func (c *PollCounters) RecordPoll(latency time.Duration) {
	if c == nil {
		return
	}
	c.polls.Add(1)
	micros := latency.Microseconds()
	if micros < 0 {
		micros = 0
	}
	c.lastPollMicros.Store(micros)
}

// RecordEmpty notes a query that returned no buffer.
func (c *PollCounters) RecordEmpty() {
	if c == nil {
		return
	}
	c.emptyPolls.Add(1)
}

// RecordStale notes a query whose frame counter had not moved.
func (c *PollCounters) RecordStale() {
	if c == nil {
		return
	}
	c.staleFrames.Add(1)
}

// RecordDelivered notes a new frame handed to the caller.
func (c *PollCounters) RecordDelivered(frame int32) {
	if c == nil {
		return
	}
	c.delivered.Add(1)
	c.lastFrame.Store(int64(frame))
}

// RecordTimeout notes a blocking wait that hit its deadline.
func (c *PollCounters) RecordTimeout() {
	if c == nil {
		return
	}
	c.timeouts.Add(1)
}

// Snapshot returns a consistent-enough copy for diagnostics.
func (c *PollCounters) Snapshot() PollSnapshot {
	if c == nil {
		return PollSnapshot{}
	}
	return PollSnapshot{
		Polls:          c.polls.Load(),
		EmptyPolls:     c.emptyPolls.Load(),
		StaleFrames:    c.staleFrames.Load(),
		Delivered:      c.delivered.Load(),
		Timeouts:       c.timeouts.Load(),
		LastFrame:      c.lastFrame.Load(),
		LastPollMicros: c.lastPollMicros.Load(),
	}
}
