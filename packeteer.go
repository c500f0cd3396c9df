package tickbridge

import (
	"errors"
	"time"

	"golang.org/x/time/rate"

	"tickbridge/ffi"
	"tickbridge/game"
)

// Packeteer yields full game snapshots as they occur, using the game
// clock as the change token. Like the Physicist it is one consumer
// session and not safe for concurrent use.
//
// The legacy and table paths deliberately disagree about what "new"
// means after the game clock rewinds (match restart): the struct path
// waits for the clock to pass its previous high-water mark, the table
// path wakes on any change. Existing consumers depend on both
// behaviors, so neither may be changed to match the other.
type Packeteer struct {
	iface        *Interface
	limiter      *rate.Limiter
	prevGameTime float32
	deps         PollerDeps
}

// NewPacketeer creates a snapshot poller session over the boundary.
func NewPacketeer(iface *Interface, deps PollerDeps) *Packeteer {
	return &Packeteer{
		iface:   iface,
		limiter: newPollLimiter(),
		deps:    deps,
	}
}

// Next blocks until the next snapshot occurs, then returns it. It
// fails with ErrPollTimeout after DefaultPollTimeout.
func (p *Packeteer) Next() (game.Snapshot, error) {
	return p.NextWithTimeout(DefaultPollTimeout)
}

// NextWithTimeout is Next with a caller-chosen deadline.
func (p *Packeteer) NextWithTimeout(timeout time.Duration) (game.Snapshot, error) {
	snap, err := pollUntil(p.limiter, timeout, func() (game.Snapshot, bool, error) {
		snap, ok := p.TryNext()
		return snap, ok, nil
	})
	if err != nil {
		p.deps.recordTimeout()
		if p.deps.Logger != nil {
			p.deps.Logger.Printf("packeteer: no new snapshot within %s (game time %.3f)", timeout, p.prevGameTime)
		}
	}
	return snap, err
}

// TryNext polls once. A snapshot is new when its game-clock reading
// is not equal to the previous one.
func (p *Packeteer) TryNext() (game.Snapshot, bool) {
	start := time.Now()
	snap, ok := p.iface.Snapshot()
	p.deps.recordPoll(time.Since(start))
	if !ok || snap.Info == nil {
		p.deps.recordEmpty()
		return game.Snapshot{}, false
	}
	if snap.Info.SecondsElapsed == p.prevGameTime {
		p.deps.recordStale()
		return game.Snapshot{}, false
	}
	p.prevGameTime = snap.Info.SecondsElapsed
	p.deps.recordDelivered(snap.Info.Frame)
	return snap, true
}

// NextStruct blocks until the next snapshot occurs, in the legacy
// struct form.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use Next instead.
func (p *Packeteer) NextStruct() (ffi.Snapshot, error) {
	return p.NextStructWithTimeout(DefaultPollTimeout)
}

// NextStructWithTimeout is NextStruct with a caller-chosen deadline.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use NextWithTimeout instead.
func (p *Packeteer) NextStructWithTimeout(timeout time.Duration) (ffi.Snapshot, error) {
	snap, err := pollUntil(p.limiter, timeout, p.TryNextStruct)
	if errors.Is(err, ErrPollTimeout) {
		p.deps.recordTimeout()
	}
	return snap, err
}

// TryNextStruct polls once in the legacy struct form. A snapshot is
// new when its game-clock reading is strictly greater than the
// previous one, so this path stays silent while a restarted match
// catches back up to the old clock.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use TryNext instead.
func (p *Packeteer) TryNextStruct() (ffi.Snapshot, bool, error) {
	start := time.Now()
	var out ffi.Snapshot
	err := p.iface.SnapshotStruct(&out)
	p.deps.recordPoll(time.Since(start))
	if err != nil {
		return ffi.Snapshot{}, false, err
	}
	if out.Info.SecondsElapsed <= p.prevGameTime {
		p.deps.recordStale()
		return ffi.Snapshot{}, false, nil
	}
	p.prevGameTime = out.Info.SecondsElapsed
	p.deps.recordDelivered(out.Info.Frame)
	return out, true, nil
}
