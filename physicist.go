package tickbridge

import (
	"errors"
	"time"

	"golang.org/x/time/rate"

	"tickbridge/ffi"
	"tickbridge/game"
	"tickbridge/telemetry"
)

// Metric keys recorded by the pollers.
const (
	metricPolls       = "poller_polls"
	metricEmptyPolls  = "poller_empty_polls"
	metricStaleFrames = "poller_stale_frames"
	metricDelivered   = "poller_delivered"
	metricTimeouts    = "poller_timeouts"
	metricLastFrame   = "poller_last_frame"
)

// PollerDeps carries the optional observability hooks for a poller.
// Zero value means discard everything.
type PollerDeps struct {
	Logger   telemetry.Logger
	Counters *telemetry.PollCounters
	Metrics  telemetry.Metrics
}

func (d PollerDeps) recordPoll(latency time.Duration) {
	d.Counters.RecordPoll(latency)
	if d.Metrics != nil {
		d.Metrics.Add(metricPolls, 1)
	}
}

func (d PollerDeps) recordEmpty() {
	d.Counters.RecordEmpty()
	if d.Metrics != nil {
		d.Metrics.Add(metricEmptyPolls, 1)
	}
}

func (d PollerDeps) recordStale() {
	d.Counters.RecordStale()
	if d.Metrics != nil {
		d.Metrics.Add(metricStaleFrames, 1)
	}
}

func (d PollerDeps) recordDelivered(frame int32) {
	d.Counters.RecordDelivered(frame)
	if d.Metrics != nil {
		d.Metrics.Add(metricDelivered, 1)
		d.Metrics.Store(metricLastFrame, uint64(uint32(frame)))
	}
}

func (d PollerDeps) recordTimeout() {
	d.Counters.RecordTimeout()
	if d.Metrics != nil {
		d.Metrics.Add(metricTimeouts, 1)
	}
}

// Physicist yields physics ticks from the engine as they occur. Each
// Physicist is one consumer session: it remembers the last frame it
// handed out and never delivers the same tick twice. It is not safe
// for concurrent use; give each goroutine its own Physicist.
type Physicist struct {
	iface     *Interface
	limiter   *rate.Limiter
	prevFrame int32
	deps      PollerDeps
}

// NewPhysicist creates a poller session over the given boundary.
func NewPhysicist(iface *Interface, deps PollerDeps) *Physicist {
	return &Physicist{
		iface:   iface,
		limiter: newPollLimiter(),
		deps:    deps,
	}
}

// Next blocks until the next physics tick occurs, then returns it.
// It fails with ErrPollTimeout after DefaultPollTimeout.
func (p *Physicist) Next() (game.PhysicsTick, error) {
	return p.NextWithTimeout(DefaultPollTimeout)
}

// NextWithTimeout is Next with a caller-chosen deadline.
func (p *Physicist) NextWithTimeout(timeout time.Duration) (game.PhysicsTick, error) {
	tick, err := pollUntil(p.limiter, timeout, func() (game.PhysicsTick, bool, error) {
		tick, ok := p.TryNext()
		return tick, ok, nil
	})
	if err != nil {
		p.deps.recordTimeout()
		if p.deps.Logger != nil {
			p.deps.Logger.Printf("physicist: no new tick within %s (last frame %d)", timeout, p.prevFrame)
		}
	}
	return tick, err
}

// TryNext polls once. If the engine serves a tick whose ball frame
// differs from the previous one, it is returned with ok=true;
// otherwise ok=false. Differs, not exceeds: a match restart rewinds
// the counter and must still wake the consumer.
func (p *Physicist) TryNext() (game.PhysicsTick, bool) {
	start := time.Now()
	tick, ok := p.iface.PhysicsTick()
	p.deps.recordPoll(time.Since(start))
	if !ok || tick.Ball == nil {
		p.deps.recordEmpty()
		return game.PhysicsTick{}, false
	}
	if tick.Ball.Frame == p.prevFrame {
		p.deps.recordStale()
		return game.PhysicsTick{}, false
	}
	p.prevFrame = tick.Ball.Frame
	p.deps.recordDelivered(p.prevFrame)
	return tick, true
}

// NextStruct blocks until the next physics tick occurs, in the legacy
// struct form.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use Next instead.
func (p *Physicist) NextStruct() (ffi.PhysicsTick, error) {
	return p.NextStructWithTimeout(DefaultPollTimeout)
}

// NextStructWithTimeout is NextStruct with a caller-chosen deadline.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use NextWithTimeout instead.
func (p *Physicist) NextStructWithTimeout(timeout time.Duration) (ffi.PhysicsTick, error) {
	tick, err := pollUntil(p.limiter, timeout, p.TryNextStruct)
	if errors.Is(err, ErrPollTimeout) {
		p.deps.recordTimeout()
	}
	return tick, err
}

// TryNextStruct polls once in the legacy struct form. Unlike the
// buffer path, the native call itself can fail; that error surfaces
// immediately.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use TryNext instead.
func (p *Physicist) TryNextStruct() (ffi.PhysicsTick, bool, error) {
	start := time.Now()
	var out ffi.PhysicsTick
	err := p.iface.PhysicsTickStruct(&out)
	p.deps.recordPoll(time.Since(start))
	if err != nil {
		return ffi.PhysicsTick{}, false, err
	}
	if out.Ball.Frame == p.prevFrame {
		p.deps.recordStale()
		return ffi.PhysicsTick{}, false, nil
	}
	p.prevFrame = out.Ball.Frame
	p.deps.recordDelivered(p.prevFrame)
	return out, true, nil
}
