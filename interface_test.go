package tickbridge

import (
	"errors"
	"testing"

	"tickbridge/bind"
	"tickbridge/ffi"
	"tickbridge/game"
)

func TestCommandStatusMapping(t *testing.T) {
	var got []byte
	core := &bind.Core{
		SendPlayerInput: func(buf []byte) ffi.Status {
			got = buf
			return ffi.StatusSuccess
		},
		SendChat: func(buf []byte) ffi.Status {
			return ffi.StatusChatRateExceeded
		},
	}
	iface := NewInterface(core)

	payload := game.EncodePlayerInput(2, game.ControllerState{Throttle: 1})
	if err := iface.SendPlayerInput(payload); err != nil {
		t.Fatalf("expected success to map to nil, got %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected the payload to reach the engine")
	}

	err := iface.SendChat(game.EncodeChatMessage(0, false, "gg"))
	var bridgeErr *Error
	if !errors.As(err, &bridgeErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if bridgeErr.Status != ffi.StatusChatRateExceeded {
		t.Fatalf("expected the exact status to survive, got %v", bridgeErr.Status)
	}
}

func TestQueriesReportAbsence(t *testing.T) {
	core := &bind.Core{
		PhysicsTickData:    func() ([]byte, bool) { return nil, false },
		SnapshotData:       func() ([]byte, bool) { return nil, false },
		FieldLayoutData:    func() ([]byte, bool) { return nil, false },
		MotionForecastData: func() ([]byte, bool) { return nil, false },
	}
	iface := NewInterface(core)

	if _, ok := iface.PhysicsTick(); ok {
		t.Fatalf("expected absent physics tick")
	}
	if _, ok := iface.Snapshot(); ok {
		t.Fatalf("expected absent snapshot")
	}
	if _, ok := iface.FieldLayout(); ok {
		t.Fatalf("expected absent field layout")
	}
	if _, ok := iface.MotionForecast(); ok {
		t.Fatalf("expected absent motion forecast")
	}
}

func TestQueryDecodesLayout(t *testing.T) {
	layout := game.FieldLayout{
		Zones: []game.Zone{
			{Location: game.Vector3{Y: -5120}, Team: 0, Width: 1786, Height: 642},
			{Location: game.Vector3{Y: 5120}, Team: 1, Width: 1786, Height: 642},
		},
		Pickups: []game.Pickup{
			{Location: game.Vector3{X: 3072, Y: 4096}, FullRecharge: true},
		},
	}
	core := &bind.Core{
		FieldLayoutData: func() ([]byte, bool) {
			return game.EncodeFieldLayout(layout), true
		},
	}

	decoded, ok := NewInterface(core).FieldLayout()
	if !ok {
		t.Fatalf("expected a layout")
	}
	if len(decoded.Zones) != 2 || len(decoded.Pickups) != 1 {
		t.Fatalf("unexpected layout shape: %d zones, %d pickups", len(decoded.Zones), len(decoded.Pickups))
	}
	if decoded.Zones[1].Team != 1 || decoded.Zones[1].Location.Y != 5120 {
		t.Fatalf("zone 1 decoded wrong: %+v", decoded.Zones[1])
	}
	if !decoded.Pickups[0].FullRecharge {
		t.Fatalf("expected a full-recharge pickup")
	}
}

func TestUnresolvedEntryPointsReportNotInitialized(t *testing.T) {
	iface := NewInterface(&bind.Core{})

	err := iface.SendPlayerInput(nil)
	var bridgeErr *Error
	if !errors.As(err, &bridgeErr) || bridgeErr.Status != ffi.StatusNotInitialized {
		t.Fatalf("expected StatusNotInitialized, got %v", err)
	}

	var tick ffi.PhysicsTick
	err = iface.PhysicsTickStruct(&tick)
	if !errors.As(err, &bridgeErr) || bridgeErr.Status != ffi.StatusNotInitialized {
		t.Fatalf("expected StatusNotInitialized from struct query, got %v", err)
	}

	if _, ok := iface.PhysicsTick(); ok {
		t.Fatalf("expected absence from an unresolved query")
	}
}

func TestStatusStrings(t *testing.T) {
	if got := ffi.StatusInvalidPlayerIndex.String(); got != "invalid_player_index" {
		t.Fatalf("unexpected status string %q", got)
	}
	if got := ffi.Status(999).String(); got != "status(999)" {
		t.Fatalf("unexpected fallback string %q", got)
	}
}
