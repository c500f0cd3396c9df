package tickbridge

import (
	"tickbridge/bind"
	"tickbridge/ffi"
	"tickbridge/game"
)

// Interface is the boundary between raw native calls and typed
// results. It holds no mutable state and performs no retries, so a
// single value may be shared freely across goroutines; all session
// state lives in the pollers.
type Interface struct {
	core *bind.Core
}

// NewInterface wraps a resolved set of engine entry points.
func NewInterface(core *bind.Core) *Interface {
	return &Interface{core: core}
}

// PhysicsTick returns the engine's current physics tick, or ok=false
// when the engine has none to serve. Absence is a normal outcome, not
// an error.
func (i *Interface) PhysicsTick() (game.PhysicsTick, bool) {
	buf, ok := i.query(func(c *bind.Core) func() ([]byte, bool) { return c.PhysicsTickData })
	if !ok {
		return game.PhysicsTick{}, false
	}
	return game.DecodePhysicsTick(buf), true
}

// Snapshot returns the engine's current full game snapshot, if any.
func (i *Interface) Snapshot() (game.Snapshot, bool) {
	buf, ok := i.query(func(c *bind.Core) func() ([]byte, bool) { return c.SnapshotData })
	if !ok {
		return game.Snapshot{}, false
	}
	return game.DecodeSnapshot(buf), true
}

// FieldLayout returns the static arena geometry, if a match is loaded.
func (i *Interface) FieldLayout() (game.FieldLayout, bool) {
	buf, ok := i.query(func(c *bind.Core) func() ([]byte, bool) { return c.FieldLayoutData })
	if !ok {
		return game.FieldLayout{}, false
	}
	return game.DecodeFieldLayout(buf), true
}

// MotionForecast returns the ball motion prediction. It is absent
// unless the engine's prediction helper process is running.
func (i *Interface) MotionForecast() (game.MotionForecast, bool) {
	buf, ok := i.query(func(c *bind.Core) func() ([]byte, bool) { return c.MotionForecastData })
	if !ok {
		return game.MotionForecast{}, false
	}
	return game.DecodeMotionForecast(buf), true
}

// SendPlayerInput forwards a serialized input command.
func (i *Interface) SendPlayerInput(buf []byte) error {
	return i.command(func(c *bind.Core) func([]byte) ffi.Status { return c.SendPlayerInput }, buf)
}

// SendRenderGroup forwards a serialized render command group.
func (i *Interface) SendRenderGroup(buf []byte) error {
	return i.command(func(c *bind.Core) func([]byte) ffi.Status { return c.SendRenderGroup }, buf)
}

// SetGameState forwards a serialized desired-state command.
func (i *Interface) SetGameState(buf []byte) error {
	return i.command(func(c *bind.Core) func([]byte) ffi.Status { return c.SetGameState }, buf)
}

// StartMatch forwards serialized match settings.
func (i *Interface) StartMatch(buf []byte) error {
	return i.command(func(c *bind.Core) func([]byte) ffi.Status { return c.StartMatch }, buf)
}

// SendChat forwards a serialized chat command.
func (i *Interface) SendChat(buf []byte) error {
	return i.command(func(c *bind.Core) func([]byte) ffi.Status { return c.SendChat }, buf)
}

// PhysicsTickStruct fills out with the current physics tick.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use PhysicsTick instead.
func (i *Interface) PhysicsTickStruct(out *ffi.PhysicsTick) error {
	if i == nil || i.core == nil || i.core.PhysicsTickStruct == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(i.core.PhysicsTickStruct(out))
}

// SnapshotStruct fills out with the current full game snapshot.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use Snapshot instead.
func (i *Interface) SnapshotStruct(out *ffi.Snapshot) error {
	if i == nil || i.core == nil || i.core.SnapshotStruct == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(i.core.SnapshotStruct(out))
}

// FieldLayoutStruct fills out with the static arena geometry.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use FieldLayout instead.
func (i *Interface) FieldLayoutStruct(out *ffi.FieldLayout) error {
	if i == nil || i.core == nil || i.core.FieldLayoutStruct == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(i.core.FieldLayoutStruct(out))
}

// MotionForecastStruct fills out with the ball motion prediction.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use MotionForecast instead.
func (i *Interface) MotionForecastStruct(out *ffi.MotionForecast) error {
	if i == nil || i.core == nil || i.core.MotionForecastStruct == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(i.core.MotionForecastStruct(out))
}

// SendPlayerInputStruct sends one frame of input in the legacy form.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use SendPlayerInput instead.
func (i *Interface) SendPlayerInputStruct(in *ffi.PlayerInput, playerIndex int32) error {
	if i == nil || i.core == nil || i.core.SendPlayerInputStruct == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(i.core.SendPlayerInputStruct(in, playerIndex))
}

// StartMatchStruct starts a match from legacy match settings.
//
// Deprecated: the struct entry points are frozen and will not learn
// new fields; use StartMatch instead.
func (i *Interface) StartMatchStruct(in *ffi.MatchSettings) error {
	if i == nil || i.core == nil || i.core.StartMatchStruct == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(i.core.StartMatchStruct(in))
}

func (i *Interface) query(pick func(*bind.Core) func() ([]byte, bool)) ([]byte, bool) {
	if i == nil || i.core == nil {
		return nil, false
	}
	call := pick(i.core)
	if call == nil {
		return nil, false
	}
	return call()
}

func (i *Interface) command(pick func(*bind.Core) func([]byte) ffi.Status, buf []byte) error {
	if i == nil || i.core == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	call := pick(i.core)
	if call == nil {
		return statusError(ffi.StatusNotInitialized)
	}
	return statusError(call(buf))
}
