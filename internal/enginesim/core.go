package enginesim

import (
	"time"

	"tickbridge/bind"
	"tickbridge/ffi"
	"tickbridge/game"
)

// Core returns a bind.Core backed by this engine. Queries encode a
// copy of the current state; commands validate the way the native
// library does and return the same status codes.
func (e *Engine) Core() *bind.Core {
	return &bind.Core{
		PhysicsTickData:    e.physicsTickData,
		SnapshotData:       e.snapshotData,
		FieldLayoutData:    e.fieldLayoutData,
		MotionForecastData: e.motionForecastData,

		SendPlayerInput: e.sendPlayerInput,
		SendRenderGroup: e.sendRenderGroup,
		SetGameState:    e.setGameState,
		StartMatch:      e.startMatch,
		SendChat:        e.sendChat,

		PhysicsTickStruct:     e.physicsTickStruct,
		SnapshotStruct:        e.snapshotStruct,
		FieldLayoutStruct:     e.fieldLayoutStruct,
		MotionForecastStruct:  e.motionForecastStruct,
		SendPlayerInputStruct: e.sendPlayerInputStruct,
		StartMatchStruct:      e.startMatchStruct,
	}
}

func (e *Engine) physicsTickData() ([]byte, bool) {
	e.mu.Lock()
	tick := e.physicsTickLocked()
	e.mu.Unlock()
	return game.EncodePhysicsTick(tick), true
}

func (e *Engine) snapshotData() ([]byte, bool) {
	e.mu.Lock()
	snap := e.snapshotLocked()
	e.mu.Unlock()
	return game.EncodeSnapshot(snap), true
}

func (e *Engine) fieldLayoutData() ([]byte, bool) {
	e.mu.Lock()
	layout := e.fieldLayoutLocked()
	e.mu.Unlock()
	return game.EncodeFieldLayout(layout), true
}

func (e *Engine) motionForecastData() ([]byte, bool) {
	e.mu.Lock()
	forecast, ok := e.forecastLocked()
	e.mu.Unlock()
	if !ok {
		return nil, false
	}
	return game.EncodeMotionForecast(forecast), true
}

func (e *Engine) sendPlayerInput(buf []byte) ffi.Status {
	if len(buf) == 0 || len(buf) > maxCommandBytes {
		return ffi.StatusMessageTooLarge
	}
	playerIndex, controls := game.DecodePlayerInput(buf)
	return e.applyInput(playerIndex, controls)
}

func (e *Engine) applyInput(playerIndex int32, controls game.ControllerState) ffi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if playerIndex < 0 || int(playerIndex) >= e.cfg.PlayerCount {
		return ffi.StatusInvalidPlayerIndex
	}
	if controls.Throttle < -1 || controls.Throttle > 1 {
		return ffi.StatusInvalidThrottle
	}
	if controls.Steer < -1 || controls.Steer > 1 {
		return ffi.StatusInvalidSteer
	}
	e.inputs[playerIndex] = controls
	return ffi.StatusSuccess
}

func (e *Engine) sendRenderGroup(buf []byte) ffi.Status {
	if len(buf) > maxCommandBytes {
		return ffi.StatusMessageTooLarge
	}
	e.mu.Lock()
	e.renders++
	e.mu.Unlock()
	return ffi.StatusSuccess
}

func (e *Engine) setGameState(buf []byte) ffi.Status {
	if len(buf) == 0 {
		return ffi.StatusInvalidGameValues
	}
	return ffi.StatusSuccess
}

func (e *Engine) startMatch(buf []byte) ffi.Status {
	if len(buf) == 0 {
		return ffi.StatusInvalidGameValues
	}
	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()
	e.logf("enginesim: match restarted")
	return ffi.StatusSuccess
}

func (e *Engine) sendChat(buf []byte) ffi.Status {
	if len(buf) > maxCommandBytes {
		return ffi.StatusMessageTooLarge
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	now := time.Now()
	if now.Sub(e.lastChat) < chatMinInterval {
		return ffi.StatusChatRateExceeded
	}
	e.lastChat = now
	return ffi.StatusSuccess
}

func (e *Engine) physicsTickStruct(out *ffi.PhysicsTick) ffi.Status {
	e.mu.Lock()
	tick := e.physicsTickLocked()
	e.mu.Unlock()

	*out = ffi.PhysicsTick{NumPlayers: int32(len(tick.Players))}
	out.Ball = legacyBody(tick.Ball)
	for i, body := range tick.Players {
		if i >= ffi.MaxPlayers {
			break
		}
		copied := body
		out.Players[i] = legacyBody(&copied)
	}
	return ffi.StatusSuccess
}

func (e *Engine) snapshotStruct(out *ffi.Snapshot) ffi.Status {
	e.mu.Lock()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	*out = ffi.Snapshot{NumPlayers: int32(len(snap.Players))}
	if snap.Info != nil {
		out.Info = ffi.GameInfo{
			SecondsElapsed: snap.Info.SecondsElapsed,
			Frame:          snap.Info.Frame,
		}
		if snap.Info.Paused {
			out.Info.Paused = 1
		}
		if snap.Info.Overtime {
			out.Info.Overtime = 1
		}
	}
	out.Ball = legacyBody(snap.Ball)
	for i, player := range snap.Players {
		if i >= ffi.MaxPlayers {
			break
		}
		out.Players[i] = ffi.PlayerState{
			Body:  legacyBody(player.Body),
			Team:  player.Team,
			Score: player.Score,
			Boost: player.Boost,
		}
	}
	return ffi.StatusSuccess
}

func (e *Engine) fieldLayoutStruct(out *ffi.FieldLayout) ffi.Status {
	e.mu.Lock()
	layout := e.fieldLayoutLocked()
	e.mu.Unlock()

	*out = ffi.FieldLayout{
		NumZones:   int32(len(layout.Zones)),
		NumPickups: int32(len(layout.Pickups)),
	}
	for i, zone := range layout.Zones {
		if i >= ffi.MaxZones {
			break
		}
		out.Zones[i] = ffi.Zone{
			Location: legacyVec(zone.Location),
			Team:     zone.Team,
			Width:    zone.Width,
			Height:   zone.Height,
		}
	}
	for i, pickup := range layout.Pickups {
		if i >= ffi.MaxPickups {
			break
		}
		out.Pickups[i] = ffi.Pickup{Location: legacyVec(pickup.Location)}
		if pickup.FullRecharge {
			out.Pickups[i].FullRecharge = 1
		}
	}
	return ffi.StatusSuccess
}

func (e *Engine) motionForecastStruct(out *ffi.MotionForecast) ffi.Status {
	e.mu.Lock()
	forecast, ok := e.forecastLocked()
	e.mu.Unlock()
	if !ok {
		*out = ffi.MotionForecast{}
		return ffi.StatusSuccess
	}

	*out = ffi.MotionForecast{NumSlices: int32(len(forecast.Slices))}
	for i, slice := range forecast.Slices {
		if i >= ffi.MaxForecastSlices {
			break
		}
		out.Slices[i] = ffi.ForecastSlice{
			GameSeconds: slice.GameSeconds,
			Body:        legacyBody(slice.Body),
		}
	}
	return ffi.StatusSuccess
}

func (e *Engine) sendPlayerInputStruct(in *ffi.PlayerInput, playerIndex int32) ffi.Status {
	return e.applyInput(playerIndex, game.ControllerState{
		Throttle:  in.Throttle,
		Steer:     in.Steer,
		Pitch:     in.Pitch,
		Yaw:       in.Yaw,
		Roll:      in.Roll,
		Jump:      in.Jump != 0,
		Boost:     in.Boost != 0,
		Handbrake: in.Handbrake != 0,
	})
}

func (e *Engine) startMatchStruct(in *ffi.MatchSettings) ffi.Status {
	if in.PlayerCount < 0 || in.PlayerCount > ffi.MaxPlayers {
		return ffi.StatusInvalidPlayerCount
	}
	e.mu.Lock()
	if in.PlayerCount > 0 {
		e.cfg.PlayerCount = int(in.PlayerCount)
	}
	e.resetLocked()
	e.mu.Unlock()
	return ffi.StatusSuccess
}

func legacyBody(body *game.BodyState) ffi.BodyState {
	if body == nil {
		return ffi.BodyState{}
	}
	return ffi.BodyState{
		Frame:           body.Frame,
		Location:        legacyVec(body.Location),
		Rotation:        ffi.Quat{X: body.Rotation.X, Y: body.Rotation.Y, Z: body.Rotation.Z, W: body.Rotation.W},
		Velocity:        legacyVec(body.Velocity),
		AngularVelocity: legacyVec(body.AngularVelocity),
	}
}

func legacyVec(v game.Vector3) ffi.Vec3 {
	return ffi.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
