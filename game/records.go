// Package game holds the owned, decoded form of every record the
// engine serves. Decoding copies all data out of the source buffer:
// the engine is free to reuse or invalidate the underlying memory on
// its next tick, so no decoded value may reference it.
package game

// Vector3 is a position or direction in arena coordinates.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Quaternion is a rotation.
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// BodyState is the physics state of one rigid body at a given frame.
// Frame is the engine's monotonically advancing tick counter and is
// the change-detection token used by the pollers.
type BodyState struct {
	Frame           int32      `json:"frame"`
	Location        Vector3    `json:"location"`
	Rotation        Quaternion `json:"rotation"`
	Velocity        Vector3    `json:"velocity"`
	AngularVelocity Vector3    `json:"angularVelocity"`
}

// PhysicsTick is one 120 Hz physics step. Ball is nil when the match
// configuration has no ball (e.g. a freeplay lobby before kickoff).
type PhysicsTick struct {
	Ball    *BodyState  `json:"ball,omitempty"`
	Players []BodyState `json:"players,omitempty"`
}

// GameInfo carries the game clock and match phase flags.
type GameInfo struct {
	SecondsElapsed float32 `json:"secondsElapsed"`
	Frame          int32   `json:"frame"`
	Paused         bool    `json:"paused"`
	Overtime       bool    `json:"overtime"`
}

// PlayerState is the game-level view of one player.
type PlayerState struct {
	Body  *BodyState `json:"body,omitempty"`
	Name  string     `json:"name"`
	Team  int32      `json:"team"`
	Score int32      `json:"score"`
	Boost float32    `json:"boost"`
}

// Snapshot is the full game state at one tick.
type Snapshot struct {
	Info    *GameInfo     `json:"info,omitempty"`
	Ball    *BodyState    `json:"ball,omitempty"`
	Players []PlayerState `json:"players,omitempty"`
}

// Zone is a static scoring region of the field.
type Zone struct {
	Location Vector3 `json:"location"`
	Team     int32   `json:"team"`
	Width    float32 `json:"width"`
	Height   float32 `json:"height"`
}

// Pickup is a static boost pickup location.
type Pickup struct {
	Location     Vector3 `json:"location"`
	FullRecharge bool    `json:"fullRecharge"`
}

// FieldLayout describes the static geometry of the loaded arena.
type FieldLayout struct {
	Zones   []Zone   `json:"zones,omitempty"`
	Pickups []Pickup `json:"pickups,omitempty"`
}

// ForecastSlice is the predicted ball state at one future instant.
type ForecastSlice struct {
	GameSeconds float32    `json:"gameSeconds"`
	Body        *BodyState `json:"body,omitempty"`
}

// MotionForecast is the engine's ball motion prediction.
type MotionForecast struct {
	Slices []ForecastSlice `json:"slices,omitempty"`
}

// ControllerState is one frame of controller input.
type ControllerState struct {
	Throttle  float32 `json:"throttle"`
	Steer     float32 `json:"steer"`
	Pitch     float32 `json:"pitch"`
	Yaw       float32 `json:"yaw"`
	Roll      float32 `json:"roll"`
	Jump      bool    `json:"jump"`
	Boost     bool    `json:"boost"`
	Handbrake bool    `json:"handbrake"`
}
