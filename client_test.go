package tickbridge

import (
	"testing"

	"tickbridge/bind"
	"tickbridge/ffi"
	"tickbridge/game"
	"tickbridge/telemetry"
)

func TestConnectRequiresLibraryPath(t *testing.T) {
	t.Setenv("TICKBRIDGE_LIB", "")

	if _, err := Connect(Options{}); err == nil {
		t.Fatalf("expected an error without a library path")
	}
}

func TestClientSharesCountersAcrossPollers(t *testing.T) {
	counters := telemetry.NewPollCounters()
	client := NewClient(tickCore(1, 2), Options{Counters: counters})

	if _, err := client.Physicist().Next(); err != nil {
		t.Fatalf("physicist Next failed: %v", err)
	}
	if snap := counters.Snapshot(); snap.Delivered != 1 {
		t.Fatalf("expected the shared counters to record the delivery, got %+v", snap)
	}
}

func TestClientPollersAreIndependentSessions(t *testing.T) {
	client := NewClient(tickCore(5), Options{})

	first := client.Physicist()
	second := client.Physicist()

	if _, ok := first.TryNext(); !ok {
		t.Fatalf("expected the first session to deliver frame 5")
	}
	// A fresh session has its own last-seen frame and must deliver the
	// same tick again.
	if _, ok := second.TryNext(); !ok {
		t.Fatalf("expected the second session to deliver frame 5 too")
	}
	if _, ok := first.TryNext(); ok {
		t.Fatalf("expected frame 5 to be stale within the first session")
	}
}

func TestClientEncodesCommands(t *testing.T) {
	var inputBuf []byte
	core := &bind.Core{
		SendPlayerInput: func(buf []byte) ffi.Status {
			inputBuf = buf
			return ffi.StatusSuccess
		},
	}
	client := NewClient(core, Options{})

	controls := game.ControllerState{Throttle: -1, Steer: 0.5, Boost: true}
	if err := client.SendPlayerInput(3, controls); err != nil {
		t.Fatalf("SendPlayerInput failed: %v", err)
	}

	index, decoded := game.DecodePlayerInput(inputBuf)
	if index != 3 {
		t.Fatalf("expected player index 3 on the wire, got %d", index)
	}
	if decoded != controls {
		t.Fatalf("controls changed on the wire:\n got %+v\nwant %+v", decoded, controls)
	}
}
