package bind

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"tickbridge/ffi"
)

// byteBuffer mirrors the engine's transfer struct for buffer-returning
// queries: a pointer into engine-owned memory plus a length. The
// memory is only valid until the matching free call.
type byteBuffer struct {
	ptr  unsafe.Pointer
	size int32
}

// Load opens the core library at path and resolves every entry point.
func Load(path string) (*Core, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("open core library %q: %w", path, err)
	}

	reg := registrar{handle: handle}

	var (
		freeBuffer        func(unsafe.Pointer)
		getPhysicsTick    func() byteBuffer
		getSnapshot       func() byteBuffer
		getFieldLayout    func() byteBuffer
		getMotionForecast func() byteBuffer

		sendPlayerInput func(unsafe.Pointer, int32) int32
		sendRenderGroup func(unsafe.Pointer, int32) int32
		setGameState    func(unsafe.Pointer, int32) int32
		startMatch      func(unsafe.Pointer, int32) int32
		sendChat        func(unsafe.Pointer, int32) int32

		physicsTickStruct     func(unsafe.Pointer) int32
		snapshotStruct        func(unsafe.Pointer) int32
		fieldLayoutStruct     func(unsafe.Pointer) int32
		motionForecastStruct  func(unsafe.Pointer) int32
		sendPlayerInputStruct func(unsafe.Pointer, int32) int32
		startMatchStruct      func(unsafe.Pointer) int32
	)

	reg.bind(&freeBuffer, "Engine_FreeBuffer")
	reg.bind(&getPhysicsTick, "Engine_GetPhysicsTick")
	reg.bind(&getSnapshot, "Engine_GetSnapshot")
	reg.bind(&getFieldLayout, "Engine_GetFieldLayout")
	reg.bind(&getMotionForecast, "Engine_GetMotionForecast")
	reg.bind(&sendPlayerInput, "Engine_SendPlayerInput")
	reg.bind(&sendRenderGroup, "Engine_SendRenderGroup")
	reg.bind(&setGameState, "Engine_SetGameState")
	reg.bind(&startMatch, "Engine_StartMatch")
	reg.bind(&sendChat, "Engine_SendChat")
	reg.bind(&physicsTickStruct, "Engine_GetPhysicsTickStruct")
	reg.bind(&snapshotStruct, "Engine_GetSnapshotStruct")
	reg.bind(&fieldLayoutStruct, "Engine_GetFieldLayoutStruct")
	reg.bind(&motionForecastStruct, "Engine_GetMotionForecastStruct")
	reg.bind(&sendPlayerInputStruct, "Engine_SendPlayerInputStruct")
	reg.bind(&startMatchStruct, "Engine_StartMatchStruct")
	if reg.err != nil {
		return nil, fmt.Errorf("resolve entry points: %w", reg.err)
	}

	return &Core{
		PhysicsTickData:    bufferQuery(getPhysicsTick, freeBuffer),
		SnapshotData:       bufferQuery(getSnapshot, freeBuffer),
		FieldLayoutData:    bufferQuery(getFieldLayout, freeBuffer),
		MotionForecastData: bufferQuery(getMotionForecast, freeBuffer),

		SendPlayerInput: command(sendPlayerInput),
		SendRenderGroup: command(sendRenderGroup),
		SetGameState:    command(setGameState),
		StartMatch:      command(startMatch),
		SendChat:        command(sendChat),

		PhysicsTickStruct: func(out *ffi.PhysicsTick) ffi.Status {
			return ffi.Status(physicsTickStruct(unsafe.Pointer(out)))
		},
		SnapshotStruct: func(out *ffi.Snapshot) ffi.Status {
			return ffi.Status(snapshotStruct(unsafe.Pointer(out)))
		},
		FieldLayoutStruct: func(out *ffi.FieldLayout) ffi.Status {
			return ffi.Status(fieldLayoutStruct(unsafe.Pointer(out)))
		},
		MotionForecastStruct: func(out *ffi.MotionForecast) ffi.Status {
			return ffi.Status(motionForecastStruct(unsafe.Pointer(out)))
		},
		SendPlayerInputStruct: func(in *ffi.PlayerInput, playerIndex int32) ffi.Status {
			return ffi.Status(sendPlayerInputStruct(unsafe.Pointer(in), playerIndex))
		},
		StartMatchStruct: func(in *ffi.MatchSettings) ffi.Status {
			return ffi.Status(startMatchStruct(unsafe.Pointer(in)))
		},
	}, nil
}

// registrar wraps purego.RegisterLibFunc, which panics on missing
// symbols, into an error-collecting form.
type registrar struct {
	handle uintptr
	err    error
}

func (r *registrar) bind(fptr any, name string) {
	if r.err != nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			r.err = fmt.Errorf("symbol %s: %v", name, recovered)
		}
	}()
	purego.RegisterLibFunc(fptr, r.handle, name)
}

func bufferQuery(call func() byteBuffer, free func(unsafe.Pointer)) func() ([]byte, bool) {
	return func() ([]byte, bool) {
		bb := call()
		if bb.ptr == nil || bb.size <= 0 {
			return nil, false
		}
		// Copy out before releasing; the engine may overwrite the
		// region on its next tick.
		data := make([]byte, bb.size)
		copy(data, unsafe.Slice((*byte)(bb.ptr), bb.size))
		free(bb.ptr)
		return data, true
	}
}

func command(call func(unsafe.Pointer, int32) int32) func([]byte) ffi.Status {
	return func(buf []byte) ffi.Status {
		if len(buf) == 0 {
			return ffi.Status(call(nil, 0))
		}
		return ffi.Status(call(unsafe.Pointer(&buf[0]), int32(len(buf))))
	}
}
