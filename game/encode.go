package game

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"tickbridge/flat"
)

// Encoders build the wire form of each record. Consumers use
// EncodePlayerInput and EncodeChatMessage to feed the command entry
// points; the remaining encoders exist for the in-process engine
// stand-in and for tests.

// EncodePlayerInput serializes one frame of controller input.
func EncodePlayerInput(playerIndex int32, controls ControllerState) []byte {
	b := flatbuffers.NewBuilder(64)
	flat.ControllerStateStart(b)
	flat.ControllerStateAddThrottle(b, controls.Throttle)
	flat.ControllerStateAddSteer(b, controls.Steer)
	flat.ControllerStateAddPitch(b, controls.Pitch)
	flat.ControllerStateAddYaw(b, controls.Yaw)
	flat.ControllerStateAddRoll(b, controls.Roll)
	flat.ControllerStateAddJump(b, controls.Jump)
	flat.ControllerStateAddBoost(b, controls.Boost)
	flat.ControllerStateAddHandbrake(b, controls.Handbrake)
	cs := flat.ControllerStateEnd(b)

	flat.PlayerInputStart(b)
	flat.PlayerInputAddPlayerIndex(b, playerIndex)
	flat.PlayerInputAddControls(b, cs)
	b.Finish(flat.PlayerInputEnd(b))
	return b.FinishedBytes()
}

// EncodeChatMessage serializes a chat command.
func EncodeChatMessage(playerIndex int32, teamOnly bool, text string) []byte {
	b := flatbuffers.NewBuilder(64)
	textOff := b.CreateString(text)
	flat.ChatMessageStart(b)
	flat.ChatMessageAddPlayerIndex(b, playerIndex)
	flat.ChatMessageAddTeamOnly(b, teamOnly)
	flat.ChatMessageAddText(b, textOff)
	b.Finish(flat.ChatMessageEnd(b))
	return b.FinishedBytes()
}

// EncodePhysicsTick serializes a physics tick.
func EncodePhysicsTick(tick PhysicsTick) []byte {
	b := flatbuffers.NewBuilder(256)

	playerOffs := make([]flatbuffers.UOffsetT, len(tick.Players))
	for i := range tick.Players {
		playerOffs[i] = appendBody(b, &tick.Players[i])
	}
	var players flatbuffers.UOffsetT
	if len(playerOffs) > 0 {
		flat.PhysicsTickStartPlayersVector(b, len(playerOffs))
		for i := len(playerOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(playerOffs[i])
		}
		players = b.EndVector(len(playerOffs))
	}

	var ball flatbuffers.UOffsetT
	if tick.Ball != nil {
		ball = appendBody(b, tick.Ball)
	}

	flat.PhysicsTickStart(b)
	if ball != 0 {
		flat.PhysicsTickAddBall(b, ball)
	}
	if players != 0 {
		flat.PhysicsTickAddPlayers(b, players)
	}
	b.Finish(flat.PhysicsTickEnd(b))
	return b.FinishedBytes()
}

// EncodeSnapshot serializes a full game snapshot.
func EncodeSnapshot(snap Snapshot) []byte {
	b := flatbuffers.NewBuilder(512)

	playerOffs := make([]flatbuffers.UOffsetT, len(snap.Players))
	for i := range snap.Players {
		player := &snap.Players[i]
		var body flatbuffers.UOffsetT
		if player.Body != nil {
			body = appendBody(b, player.Body)
		}
		name := b.CreateString(player.Name)
		flat.PlayerStateStart(b)
		if body != 0 {
			flat.PlayerStateAddBody(b, body)
		}
		flat.PlayerStateAddName(b, name)
		flat.PlayerStateAddTeam(b, player.Team)
		flat.PlayerStateAddScore(b, player.Score)
		flat.PlayerStateAddBoost(b, player.Boost)
		playerOffs[i] = flat.PlayerStateEnd(b)
	}
	var players flatbuffers.UOffsetT
	if len(playerOffs) > 0 {
		flat.SnapshotStartPlayersVector(b, len(playerOffs))
		for i := len(playerOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(playerOffs[i])
		}
		players = b.EndVector(len(playerOffs))
	}

	var info flatbuffers.UOffsetT
	if snap.Info != nil {
		flat.GameInfoStart(b)
		flat.GameInfoAddSecondsElapsed(b, snap.Info.SecondsElapsed)
		flat.GameInfoAddFrame(b, snap.Info.Frame)
		flat.GameInfoAddPaused(b, snap.Info.Paused)
		flat.GameInfoAddOvertime(b, snap.Info.Overtime)
		info = flat.GameInfoEnd(b)
	}
	var ball flatbuffers.UOffsetT
	if snap.Ball != nil {
		ball = appendBody(b, snap.Ball)
	}

	flat.SnapshotStart(b)
	if info != 0 {
		flat.SnapshotAddInfo(b, info)
	}
	if ball != 0 {
		flat.SnapshotAddBall(b, ball)
	}
	if players != 0 {
		flat.SnapshotAddPlayers(b, players)
	}
	b.Finish(flat.SnapshotEnd(b))
	return b.FinishedBytes()
}

// EncodeFieldLayout serializes the static arena geometry.
func EncodeFieldLayout(layout FieldLayout) []byte {
	b := flatbuffers.NewBuilder(256)

	zoneOffs := make([]flatbuffers.UOffsetT, len(layout.Zones))
	for i := range layout.Zones {
		zone := &layout.Zones[i]
		flat.ZoneStart(b)
		flat.ZoneAddLocation(b, flat.CreateVec3(b, zone.Location.X, zone.Location.Y, zone.Location.Z))
		flat.ZoneAddTeam(b, zone.Team)
		flat.ZoneAddWidth(b, zone.Width)
		flat.ZoneAddHeight(b, zone.Height)
		zoneOffs[i] = flat.ZoneEnd(b)
	}
	var zones flatbuffers.UOffsetT
	if len(zoneOffs) > 0 {
		flat.FieldLayoutStartZonesVector(b, len(zoneOffs))
		for i := len(zoneOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(zoneOffs[i])
		}
		zones = b.EndVector(len(zoneOffs))
	}

	pickupOffs := make([]flatbuffers.UOffsetT, len(layout.Pickups))
	for i := range layout.Pickups {
		pickup := &layout.Pickups[i]
		flat.PickupStart(b)
		flat.PickupAddLocation(b, flat.CreateVec3(b, pickup.Location.X, pickup.Location.Y, pickup.Location.Z))
		flat.PickupAddFullRecharge(b, pickup.FullRecharge)
		pickupOffs[i] = flat.PickupEnd(b)
	}
	var pickups flatbuffers.UOffsetT
	if len(pickupOffs) > 0 {
		flat.FieldLayoutStartPickupsVector(b, len(pickupOffs))
		for i := len(pickupOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(pickupOffs[i])
		}
		pickups = b.EndVector(len(pickupOffs))
	}

	flat.FieldLayoutStart(b)
	if zones != 0 {
		flat.FieldLayoutAddZones(b, zones)
	}
	if pickups != 0 {
		flat.FieldLayoutAddPickups(b, pickups)
	}
	b.Finish(flat.FieldLayoutEnd(b))
	return b.FinishedBytes()
}

// EncodeMotionForecast serializes a ball motion prediction.
func EncodeMotionForecast(forecast MotionForecast) []byte {
	b := flatbuffers.NewBuilder(512)

	sliceOffs := make([]flatbuffers.UOffsetT, len(forecast.Slices))
	for i := range forecast.Slices {
		slice := &forecast.Slices[i]
		var body flatbuffers.UOffsetT
		if slice.Body != nil {
			body = appendBody(b, slice.Body)
		}
		flat.ForecastSliceStart(b)
		flat.ForecastSliceAddGameSeconds(b, slice.GameSeconds)
		if body != 0 {
			flat.ForecastSliceAddBody(b, body)
		}
		sliceOffs[i] = flat.ForecastSliceEnd(b)
	}
	var slices flatbuffers.UOffsetT
	if len(sliceOffs) > 0 {
		flat.MotionForecastStartSlicesVector(b, len(sliceOffs))
		for i := len(sliceOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(sliceOffs[i])
		}
		slices = b.EndVector(len(sliceOffs))
	}

	flat.MotionForecastStart(b)
	if slices != 0 {
		flat.MotionForecastAddSlices(b, slices)
	}
	b.Finish(flat.MotionForecastEnd(b))
	return b.FinishedBytes()
}

func appendBody(b *flatbuffers.Builder, body *BodyState) flatbuffers.UOffsetT {
	flat.BodyStateStart(b)
	flat.BodyStateAddFrame(b, body.Frame)
	flat.BodyStateAddLocation(b, flat.CreateVec3(b, body.Location.X, body.Location.Y, body.Location.Z))
	flat.BodyStateAddRotation(b, flat.CreateQuat(b, body.Rotation.X, body.Rotation.Y, body.Rotation.Z, body.Rotation.W))
	flat.BodyStateAddVelocity(b, flat.CreateVec3(b, body.Velocity.X, body.Velocity.Y, body.Velocity.Z))
	flat.BodyStateAddAngularVelocity(b, flat.CreateVec3(b, body.AngularVelocity.X, body.AngularVelocity.Y, body.AngularVelocity.Z))
	return flat.BodyStateEnd(b)
}
