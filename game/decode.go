package game

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"tickbridge/flat"
)

// Decoding never fails: buffers handed over by the engine are
// structurally valid by construction, and fields a given engine build
// omits simply decode to their zero value or a nil subtree. A buffer
// too short to hold a root offset decodes to an empty record.

const minTableBuffer = flatbuffers.SizeUOffsetT

// DecodePhysicsTick decodes a wire physics tick into an owned record.
func DecodePhysicsTick(buf []byte) PhysicsTick {
	if len(buf) < minTableBuffer {
		return PhysicsTick{}
	}
	src := flat.GetRootAsPhysicsTick(buf, 0)
	tick := PhysicsTick{
		Ball: decodeBody(src.Ball(nil)),
	}
	if n := src.PlayersLength(); n > 0 {
		tick.Players = make([]BodyState, 0, n)
		var body flat.BodyState
		for j := 0; j < n; j++ {
			if src.Players(&body, j) {
				tick.Players = append(tick.Players, *decodeBody(&body))
			}
		}
	}
	return tick
}

// DecodeSnapshot decodes a wire game snapshot into an owned record.
func DecodeSnapshot(buf []byte) Snapshot {
	if len(buf) < minTableBuffer {
		return Snapshot{}
	}
	src := flat.GetRootAsSnapshot(buf, 0)
	snap := Snapshot{
		Info: decodeInfo(src.Info(nil)),
		Ball: decodeBody(src.Ball(nil)),
	}
	if n := src.PlayersLength(); n > 0 {
		snap.Players = make([]PlayerState, 0, n)
		var player flat.PlayerState
		for j := 0; j < n; j++ {
			if src.Players(&player, j) {
				snap.Players = append(snap.Players, PlayerState{
					Body:  decodeBody(player.Body(nil)),
					Name:  string(player.Name()),
					Team:  player.Team(),
					Score: player.Score(),
					Boost: player.Boost(),
				})
			}
		}
	}
	return snap
}

// DecodeFieldLayout decodes the static arena geometry.
func DecodeFieldLayout(buf []byte) FieldLayout {
	if len(buf) < minTableBuffer {
		return FieldLayout{}
	}
	src := flat.GetRootAsFieldLayout(buf, 0)
	var layout FieldLayout
	if n := src.ZonesLength(); n > 0 {
		layout.Zones = make([]Zone, 0, n)
		var zone flat.Zone
		for j := 0; j < n; j++ {
			if src.Zones(&zone, j) {
				layout.Zones = append(layout.Zones, Zone{
					Location: decodeVec3(zone.Location(nil)),
					Team:     zone.Team(),
					Width:    zone.Width(),
					Height:   zone.Height(),
				})
			}
		}
	}
	if n := src.PickupsLength(); n > 0 {
		layout.Pickups = make([]Pickup, 0, n)
		var pickup flat.Pickup
		for j := 0; j < n; j++ {
			if src.Pickups(&pickup, j) {
				layout.Pickups = append(layout.Pickups, Pickup{
					Location:     decodeVec3(pickup.Location(nil)),
					FullRecharge: pickup.FullRecharge(),
				})
			}
		}
	}
	return layout
}

// DecodeMotionForecast decodes the ball motion prediction.
func DecodeMotionForecast(buf []byte) MotionForecast {
	if len(buf) < minTableBuffer {
		return MotionForecast{}
	}
	src := flat.GetRootAsMotionForecast(buf, 0)
	var forecast MotionForecast
	if n := src.SlicesLength(); n > 0 {
		forecast.Slices = make([]ForecastSlice, 0, n)
		var slice flat.ForecastSlice
		for j := 0; j < n; j++ {
			if src.Slices(&slice, j) {
				forecast.Slices = append(forecast.Slices, ForecastSlice{
					GameSeconds: slice.GameSeconds(),
					Body:        decodeBody(slice.Body(nil)),
				})
			}
		}
	}
	return forecast
}

// DecodePlayerInput decodes a serialized input command. Used by the
// in-process engine stand-in and by tools that inspect traffic.
func DecodePlayerInput(buf []byte) (playerIndex int32, controls ControllerState) {
	if len(buf) < minTableBuffer {
		return 0, ControllerState{}
	}
	src := flat.GetRootAsPlayerInput(buf, 0)
	playerIndex = src.PlayerIndex()
	if c := src.Controls(nil); c != nil {
		controls = ControllerState{
			Throttle:  c.Throttle(),
			Steer:     c.Steer(),
			Pitch:     c.Pitch(),
			Yaw:       c.Yaw(),
			Roll:      c.Roll(),
			Jump:      c.Jump(),
			Boost:     c.Boost(),
			Handbrake: c.Handbrake(),
		}
	}
	return playerIndex, controls
}

func decodeBody(src *flat.BodyState) *BodyState {
	if src == nil {
		return nil
	}
	return &BodyState{
		Frame:           src.Frame(),
		Location:        decodeVec3(src.Location(nil)),
		Rotation:        decodeQuat(src.Rotation(nil)),
		Velocity:        decodeVec3(src.Velocity(nil)),
		AngularVelocity: decodeVec3(src.AngularVelocity(nil)),
	}
}

func decodeInfo(src *flat.GameInfo) *GameInfo {
	if src == nil {
		return nil
	}
	return &GameInfo{
		SecondsElapsed: src.SecondsElapsed(),
		Frame:          src.Frame(),
		Paused:         src.Paused(),
		Overtime:       src.Overtime(),
	}
}

func decodeVec3(src *flat.Vec3) Vector3 {
	if src == nil {
		return Vector3{}
	}
	return Vector3{X: src.X(), Y: src.Y(), Z: src.Z()}
}

func decodeQuat(src *flat.Quat) Quaternion {
	if src == nil {
		return Quaternion{}
	}
	return Quaternion{X: src.X(), Y: src.Y(), Z: src.Z(), W: src.W()}
}
