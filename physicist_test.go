package tickbridge

import (
	"errors"
	"sync"
	"testing"
	"time"

	"tickbridge/bind"
	"tickbridge/ffi"
	"tickbridge/game"
	"tickbridge/telemetry"
)

// tickCore serves encoded physics ticks from a fixed frame sequence,
// repeating the last entry once the script runs out.
func tickCore(frames ...int32) *bind.Core {
	var mu sync.Mutex
	i := 0
	return &bind.Core{
		PhysicsTickData: func() ([]byte, bool) {
			mu.Lock()
			frame := frames[i]
			if i < len(frames)-1 {
				i++
			}
			mu.Unlock()
			ball := game.BodyState{Frame: frame}
			return game.EncodePhysicsTick(game.PhysicsTick{Ball: &ball}), true
		},
	}
}

func TestPhysicistDeliversFirstTick(t *testing.T) {
	p := NewPhysicist(NewInterface(tickCore(41)), PollerDeps{})

	tick, err := p.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if tick.Ball == nil || tick.Ball.Frame != 41 {
		t.Fatalf("expected ball frame 41, got %+v", tick.Ball)
	}
}

func TestPhysicistSkipsRepeatedFrames(t *testing.T) {
	counters := telemetry.NewPollCounters()
	p := NewPhysicist(NewInterface(tickCore(41, 41, 41, 42)), PollerDeps{Counters: counters})

	first, err := p.Next()
	if err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if first.Ball.Frame != 41 {
		t.Fatalf("expected frame 41 first, got %d", first.Ball.Frame)
	}

	second, err := p.Next()
	if err != nil {
		t.Fatalf("second Next failed: %v", err)
	}
	if second.Ball.Frame != 42 {
		t.Fatalf("expected frame 42 second, got %d", second.Ball.Frame)
	}

	snap := counters.Snapshot()
	if snap.StaleFrames != 2 {
		t.Fatalf("expected 2 stale polls, got %d", snap.StaleFrames)
	}
	if snap.Delivered != 2 {
		t.Fatalf("expected 2 deliveries, got %d", snap.Delivered)
	}
	if snap.LastFrame != 42 {
		t.Fatalf("expected last frame 42, got %d", snap.LastFrame)
	}
}

func TestPhysicistTryNextSequence(t *testing.T) {
	p := NewPhysicist(NewInterface(tickCore(41, 41, 41, 41, 42)), PollerDeps{})

	first, ok := p.TryNext()
	if !ok || first.Ball.Frame != 41 {
		t.Fatalf("expected the first poll to deliver frame 41, got ok=%v tick=%+v", ok, first.Ball)
	}
	for n := 0; n < 3; n++ {
		if _, ok := p.TryNext(); ok {
			t.Fatalf("poll %d: expected the repeated frame 41 to yield nothing", n+2)
		}
	}
	next, ok := p.TryNext()
	if !ok || next.Ball.Frame != 42 {
		t.Fatalf("expected frame 42 to deliver, got ok=%v tick=%+v", ok, next.Ball)
	}
	if _, ok := p.TryNext(); ok {
		t.Fatalf("expected frame 42 to yield nothing once delivered")
	}
}

func TestPhysicistRecordsMetrics(t *testing.T) {
	metrics := &telemetry.MetricsMap{}
	p := NewPhysicist(NewInterface(tickCore(41, 41, 41, 42)), PollerDeps{Metrics: metrics})

	if _, err := p.Next(); err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if _, err := p.Next(); err != nil {
		t.Fatalf("second Next failed: %v", err)
	}

	values := metrics.Snapshot()
	if values[metricPolls] != 4 {
		t.Fatalf("expected 4 polls, got %d", values[metricPolls])
	}
	if values[metricStaleFrames] != 2 {
		t.Fatalf("expected 2 stale polls, got %d", values[metricStaleFrames])
	}
	if values[metricDelivered] != 2 {
		t.Fatalf("expected 2 deliveries, got %d", values[metricDelivered])
	}
	if values[metricLastFrame] != 42 {
		t.Fatalf("expected last frame 42, got %d", values[metricLastFrame])
	}
}

func TestPhysicistDeliversAfterFrameRewind(t *testing.T) {
	p := NewPhysicist(NewInterface(tickCore(100, 50)), PollerDeps{})

	first, err := p.Next()
	if err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if first.Ball.Frame != 100 {
		t.Fatalf("expected frame 100, got %d", first.Ball.Frame)
	}

	// A restarted match rewinds the counter; the rewound frame still
	// counts as new.
	second, err := p.Next()
	if err != nil {
		t.Fatalf("Next after rewind failed: %v", err)
	}
	if second.Ball.Frame != 50 {
		t.Fatalf("expected frame 50 after rewind, got %d", second.Ball.Frame)
	}
}

func TestPhysicistIgnoresTicksWithoutBall(t *testing.T) {
	counters := telemetry.NewPollCounters()
	core := &bind.Core{
		PhysicsTickData: func() ([]byte, bool) {
			return game.EncodePhysicsTick(game.PhysicsTick{Players: []game.BodyState{{Frame: 9}}}), true
		},
	}
	p := NewPhysicist(NewInterface(core), PollerDeps{Counters: counters})

	if _, ok := p.TryNext(); ok {
		t.Fatalf("expected no delivery for a ball-less tick")
	}
	if snap := counters.Snapshot(); snap.EmptyPolls != 1 {
		t.Fatalf("expected 1 empty poll, got %d", snap.EmptyPolls)
	}
}

func TestPhysicistAbsentBuffer(t *testing.T) {
	core := &bind.Core{
		PhysicsTickData: func() ([]byte, bool) { return nil, false },
	}
	p := NewPhysicist(NewInterface(core), PollerDeps{})

	if _, ok := p.TryNext(); ok {
		t.Fatalf("expected no delivery when the engine has no tick")
	}
}

func TestPhysicistTimeout(t *testing.T) {
	counters := telemetry.NewPollCounters()
	p := NewPhysicist(NewInterface(tickCore(7)), PollerDeps{Counters: counters})

	if _, err := p.Next(); err != nil {
		t.Fatalf("priming Next failed: %v", err)
	}

	timeout := 50 * time.Millisecond
	start := time.Now()
	_, err := p.NextWithTimeout(timeout)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("expected ErrPollTimeout, got %v", err)
	}
	// The limiter may refuse a wait that cannot finish before the
	// deadline, so the return can land one poll interval early.
	if elapsed < timeout-10*time.Millisecond {
		t.Fatalf("timed out too early: %s < %s", elapsed, timeout)
	}
	if elapsed > timeout+time.Second {
		t.Fatalf("timed out far too late: %s", elapsed)
	}
	if snap := counters.Snapshot(); snap.Timeouts != 1 {
		t.Fatalf("expected 1 timeout, got %d", snap.Timeouts)
	}
}

func TestPhysicistStructPath(t *testing.T) {
	var mu sync.Mutex
	frames := []int32{41, 41, 42}
	i := 0
	core := &bind.Core{
		PhysicsTickStruct: func(out *ffi.PhysicsTick) ffi.Status {
			mu.Lock()
			out.Ball.Frame = frames[i]
			if i < len(frames)-1 {
				i++
			}
			mu.Unlock()
			return ffi.StatusSuccess
		},
	}
	p := NewPhysicist(NewInterface(core), PollerDeps{})

	first, ok, err := p.TryNextStruct()
	if err != nil || !ok {
		t.Fatalf("expected first struct poll to deliver, got ok=%v err=%v", ok, err)
	}
	if first.Ball.Frame != 41 {
		t.Fatalf("expected frame 41, got %d", first.Ball.Frame)
	}

	if _, ok, err := p.TryNextStruct(); err != nil || ok {
		t.Fatalf("expected repeated frame to be stale, got ok=%v err=%v", ok, err)
	}

	second, err := p.NextStruct()
	if err != nil {
		t.Fatalf("NextStruct failed: %v", err)
	}
	if second.Ball.Frame != 42 {
		t.Fatalf("expected frame 42, got %d", second.Ball.Frame)
	}
}

func TestPhysicistStructErrorSurfaces(t *testing.T) {
	core := &bind.Core{
		PhysicsTickStruct: func(out *ffi.PhysicsTick) ffi.Status {
			return ffi.StatusBufferOverfilled
		},
	}
	p := NewPhysicist(NewInterface(core), PollerDeps{})

	_, _, err := p.TryNextStruct()
	var bridgeErr *Error
	if !errors.As(err, &bridgeErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if bridgeErr.Status != ffi.StatusBufferOverfilled {
		t.Fatalf("expected StatusBufferOverfilled, got %v", bridgeErr.Status)
	}
}

func TestPhysicistSessionSharedAcrossPaths(t *testing.T) {
	frame := int32(77)
	core := &bind.Core{
		PhysicsTickData: func() ([]byte, bool) {
			ball := game.BodyState{Frame: frame}
			return game.EncodePhysicsTick(game.PhysicsTick{Ball: &ball}), true
		},
		PhysicsTickStruct: func(out *ffi.PhysicsTick) ffi.Status {
			out.Ball.Frame = frame
			return ffi.StatusSuccess
		},
	}
	p := NewPhysicist(NewInterface(core), PollerDeps{})

	if _, ok := p.TryNext(); !ok {
		t.Fatalf("expected table path to deliver frame %d", frame)
	}
	// Both paths share one last-seen frame; the struct path must see
	// the frame as already delivered.
	if _, ok, err := p.TryNextStruct(); err != nil || ok {
		t.Fatalf("expected struct path to treat frame %d as stale, got ok=%v err=%v", frame, ok, err)
	}
}
