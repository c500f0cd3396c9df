// Package bind resolves the native core library's entry points into
// plain Go funcs. Everything above this package talks to the engine
// through a Core value, so tests and tools can substitute closures for
// the real library.
package bind

import "tickbridge/ffi"

// Core is the full set of engine entry points. Buffer queries return
// a fresh Go slice (the engine-owned region is copied and released
// before the call returns) or ok=false when the engine has no data of
// that kind. Command calls return the raw status code unchanged.
type Core struct {
	PhysicsTickData    func() ([]byte, bool)
	SnapshotData       func() ([]byte, bool)
	FieldLayoutData    func() ([]byte, bool)
	MotionForecastData func() ([]byte, bool)

	SendPlayerInput func(buf []byte) ffi.Status
	SendRenderGroup func(buf []byte) ffi.Status
	SetGameState    func(buf []byte) ffi.Status
	StartMatch      func(buf []byte) ffi.Status
	SendChat        func(buf []byte) ffi.Status

	// Legacy struct entry points. Each fills the caller-supplied out
	// parameter in place and returns a status.
	PhysicsTickStruct     func(out *ffi.PhysicsTick) ffi.Status
	SnapshotStruct        func(out *ffi.Snapshot) ffi.Status
	FieldLayoutStruct     func(out *ffi.FieldLayout) ffi.Status
	MotionForecastStruct  func(out *ffi.MotionForecast) ffi.Status
	SendPlayerInputStruct func(in *ffi.PlayerInput, playerIndex int32) ffi.Status
	StartMatchStruct      func(in *ffi.MatchSettings) ffi.Status
}
