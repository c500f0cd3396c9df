// Package ffi declares the fixed-layout binary structs and raw status
// codes shared with the native core library. The struct forms are the
// legacy half of the engine's dual API surface: each one is filled in
// place by a native call and mirrors the memory layout the engine has
// shipped since before the table-based wire format existed. Field
// order, fixed array sizes, and uint8 booleans are part of that ABI
// and must not change.
package ffi

// Capacity limits baked into the legacy ABI.
const (
	MaxPlayers        = 10
	MaxZones          = 8
	MaxPickups        = 64
	MaxForecastSlices = 360
)

// Vec3 is a position or direction in arena coordinates.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Quat is a rotation quaternion.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// BodyState is the physics state of one rigid body at a given frame.
type BodyState struct {
	Frame           int32
	Location        Vec3
	Rotation        Quat
	Velocity        Vec3
	AngularVelocity Vec3
}

// PhysicsTick is one 120 Hz physics step for every tracked body.
type PhysicsTick struct {
	Ball       BodyState
	Players    [MaxPlayers]BodyState
	NumPlayers int32
}

// GameInfo carries the game clock and match phase flags.
type GameInfo struct {
	SecondsElapsed float32
	Frame          int32
	Paused         uint8
	Overtime       uint8
}

// PlayerState is the game-level view of one player.
type PlayerState struct {
	Body  BodyState
	Team  int32
	Score int32
	Boost float32
}

// Snapshot is the full game state at one tick.
type Snapshot struct {
	Info       GameInfo
	Ball       BodyState
	Players    [MaxPlayers]PlayerState
	NumPlayers int32
}

// Zone is a static scoring region of the field.
type Zone struct {
	Location Vec3
	Team     int32
	Width    float32
	Height   float32
}

// Pickup is a static boost pickup location.
type Pickup struct {
	Location     Vec3
	FullRecharge uint8
}

// FieldLayout describes the static geometry of the loaded arena.
type FieldLayout struct {
	Zones      [MaxZones]Zone
	NumZones   int32
	Pickups    [MaxPickups]Pickup
	NumPickups int32
}

// ForecastSlice is the predicted ball state at one future instant.
type ForecastSlice struct {
	GameSeconds float32
	Body        BodyState
}

// MotionForecast is the engine's ball motion prediction. It is only
// populated while the prediction helper process is running.
type MotionForecast struct {
	Slices    [MaxForecastSlices]ForecastSlice
	NumSlices int32
}

// PlayerInput is one frame of controller input for a player.
type PlayerInput struct {
	Throttle  float32
	Steer     float32
	Pitch     float32
	Yaw       float32
	Roll      float32
	Jump      uint8
	Boost     uint8
	Handbrake uint8
}

// MatchSettings selects the mode and player count for a new match.
type MatchSettings struct {
	GameMode     int32
	PlayerCount  int32
	SkipReplays  uint8
	InstantStart uint8
}
