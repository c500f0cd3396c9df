package tickbridge

import (
	"errors"
	"sync"
	"testing"
	"time"

	"tickbridge/bind"
	"tickbridge/ffi"
	"tickbridge/game"
)

// snapCore serves encoded snapshots from a fixed game-clock sequence,
// repeating the last entry once the script runs out.
func snapCore(times ...float32) *bind.Core {
	var mu sync.Mutex
	i := 0
	next := func() float32 {
		mu.Lock()
		defer mu.Unlock()
		at := times[i]
		if i < len(times)-1 {
			i++
		}
		return at
	}
	return &bind.Core{
		SnapshotData: func() ([]byte, bool) {
			at := next()
			ball := game.BodyState{Frame: int32(at * 120)}
			return game.EncodeSnapshot(game.Snapshot{
				Info: &game.GameInfo{SecondsElapsed: at, Frame: ball.Frame},
				Ball: &ball,
			}), true
		},
		SnapshotStruct: func(out *ffi.Snapshot) ffi.Status {
			at := next()
			*out = ffi.Snapshot{}
			out.Info.SecondsElapsed = at
			out.Info.Frame = int32(at * 120)
			return ffi.StatusSuccess
		},
	}
}

func TestPacketeerDeliversOnClockChange(t *testing.T) {
	p := NewPacketeer(NewInterface(snapCore(1.5)), PollerDeps{})

	snap, err := p.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if snap.Info == nil || snap.Info.SecondsElapsed != 1.5 {
		t.Fatalf("expected game time 1.5, got %+v", snap.Info)
	}

	if _, ok := p.TryNext(); ok {
		t.Fatalf("expected an unchanged clock to be stale")
	}
}

func TestPacketeerTablePathDeliversAfterClockRewind(t *testing.T) {
	p := NewPacketeer(NewInterface(snapCore(2.0, 1.0)), PollerDeps{})

	first, err := p.Next()
	if err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if first.Info.SecondsElapsed != 2.0 {
		t.Fatalf("expected game time 2.0, got %v", first.Info.SecondsElapsed)
	}

	second, ok := p.TryNext()
	if !ok {
		t.Fatalf("expected the table path to wake on a rewound clock")
	}
	if second.Info.SecondsElapsed != 1.0 {
		t.Fatalf("expected game time 1.0 after rewind, got %v", second.Info.SecondsElapsed)
	}
}

func TestPacketeerStructPathSilentAfterClockRewind(t *testing.T) {
	p := NewPacketeer(NewInterface(snapCore(2.0, 1.0, 1.0, 2.5)), PollerDeps{})

	first, ok, err := p.TryNextStruct()
	if err != nil || !ok {
		t.Fatalf("expected first struct poll to deliver, got ok=%v err=%v", ok, err)
	}
	if first.Info.SecondsElapsed != 2.0 {
		t.Fatalf("expected game time 2.0, got %v", first.Info.SecondsElapsed)
	}

	// The struct path holds its high-water mark through the rewind.
	for i := 0; i < 2; i++ {
		if _, ok, err := p.TryNextStruct(); err != nil || ok {
			t.Fatalf("expected rewound clock to be stale on struct path, got ok=%v err=%v", ok, err)
		}
	}

	resumed, ok, err := p.TryNextStruct()
	if err != nil || !ok {
		t.Fatalf("expected delivery once the clock passes the mark, got ok=%v err=%v", ok, err)
	}
	if resumed.Info.SecondsElapsed != 2.5 {
		t.Fatalf("expected game time 2.5, got %v", resumed.Info.SecondsElapsed)
	}
}

func TestPacketeerEmptyWhenInfoAbsent(t *testing.T) {
	core := &bind.Core{
		SnapshotData: func() ([]byte, bool) {
			ball := game.BodyState{Frame: 3}
			return game.EncodeSnapshot(game.Snapshot{Ball: &ball}), true
		},
	}
	p := NewPacketeer(NewInterface(core), PollerDeps{})

	if _, ok := p.TryNext(); ok {
		t.Fatalf("expected a snapshot without game info to be skipped")
	}
}

func TestPacketeerTimeout(t *testing.T) {
	p := NewPacketeer(NewInterface(snapCore(1.0)), PollerDeps{})

	if _, err := p.Next(); err != nil {
		t.Fatalf("priming Next failed: %v", err)
	}

	_, err := p.NextWithTimeout(50 * time.Millisecond)
	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("expected ErrPollTimeout, got %v", err)
	}
}
