package game

import (
	"reflect"
	"testing"
)

func sampleBody(frame int32) BodyState {
	return BodyState{
		Frame:           frame,
		Location:        Vector3{X: 1, Y: -2, Z: 93},
		Rotation:        Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9},
		Velocity:        Vector3{X: 800, Y: -650, Z: 12},
		AngularVelocity: Vector3{Z: 5.5},
	}
}

func TestPhysicsTickRoundTrip(t *testing.T) {
	ball := sampleBody(41)
	tick := PhysicsTick{
		Ball:    &ball,
		Players: []BodyState{sampleBody(41), sampleBody(41)},
	}

	decoded := DecodePhysicsTick(EncodePhysicsTick(tick))
	if !reflect.DeepEqual(decoded, tick) {
		t.Fatalf("round trip changed the tick:\n got %+v\nwant %+v", decoded, tick)
	}
}

func TestPhysicsTickAbsentBallDecodesToNil(t *testing.T) {
	tick := PhysicsTick{Players: []BodyState{sampleBody(3)}}

	decoded := DecodePhysicsTick(EncodePhysicsTick(tick))
	if decoded.Ball != nil {
		t.Fatalf("expected nil ball, got %+v", decoded.Ball)
	}
	if len(decoded.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(decoded.Players))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ball := sampleBody(120)
	body := sampleBody(120)
	snap := Snapshot{
		Info: &GameInfo{SecondsElapsed: 1.0, Frame: 120, Overtime: true},
		Ball: &ball,
		Players: []PlayerState{
			{Body: &body, Name: "sim-0", Team: 0, Score: 100, Boost: 33},
			{Name: "spectator", Team: 1},
		},
	}

	decoded := DecodeSnapshot(EncodeSnapshot(snap))
	if !reflect.DeepEqual(decoded, snap) {
		t.Fatalf("round trip changed the snapshot:\n got %+v\nwant %+v", decoded, snap)
	}
}

func TestFieldLayoutRoundTrip(t *testing.T) {
	layout := FieldLayout{
		Zones: []Zone{
			{Location: Vector3{Y: -5120}, Team: 0, Width: 1786, Height: 642},
			{Location: Vector3{Y: 5120}, Team: 1, Width: 1786, Height: 642},
		},
		Pickups: []Pickup{
			{Location: Vector3{X: -3072, Y: -4096}, FullRecharge: true},
			{Location: Vector3{}, FullRecharge: false},
		},
	}

	decoded := DecodeFieldLayout(EncodeFieldLayout(layout))
	if !reflect.DeepEqual(decoded, layout) {
		t.Fatalf("round trip changed the layout:\n got %+v\nwant %+v", decoded, layout)
	}
}

func TestMotionForecastRoundTrip(t *testing.T) {
	first := sampleBody(42)
	second := sampleBody(43)
	forecast := MotionForecast{
		Slices: []ForecastSlice{
			{GameSeconds: 0.35, Body: &first},
			{GameSeconds: 0.3583, Body: &second},
		},
	}

	decoded := DecodeMotionForecast(EncodeMotionForecast(forecast))
	if !reflect.DeepEqual(decoded, forecast) {
		t.Fatalf("round trip changed the forecast:\n got %+v\nwant %+v", decoded, forecast)
	}
}

func TestPlayerInputRoundTrip(t *testing.T) {
	controls := ControllerState{
		Throttle:  1,
		Steer:     -0.5,
		Pitch:     0.25,
		Jump:      true,
		Handbrake: true,
	}

	index, decoded := DecodePlayerInput(EncodePlayerInput(7, controls))
	if index != 7 {
		t.Fatalf("expected player index 7, got %d", index)
	}
	if decoded != controls {
		t.Fatalf("round trip changed the controls:\n got %+v\nwant %+v", decoded, controls)
	}
}

// Decoding copies everything out of the buffer, so decoding the same
// bytes twice must produce identical, independent values.
func TestDecodeIsDeterministicAndOwned(t *testing.T) {
	ball := sampleBody(9)
	buf := EncodePhysicsTick(PhysicsTick{Ball: &ball})

	first := DecodePhysicsTick(buf)
	second := DecodePhysicsTick(buf)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("double decode diverged:\n%+v\n%+v", first, second)
	}

	for i := range buf {
		buf[i] = 0
	}
	if first.Ball == nil || first.Ball.Frame != 9 {
		t.Fatalf("decoded value referenced the source buffer: %+v", first.Ball)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	if tick := DecodePhysicsTick(nil); tick.Ball != nil || tick.Players != nil {
		t.Fatalf("expected an empty tick from a nil buffer, got %+v", tick)
	}
	if snap := DecodeSnapshot([]byte{1, 2}); snap.Info != nil {
		t.Fatalf("expected an empty snapshot from a short buffer, got %+v", snap)
	}
}
