// Package enginesim is an in-process stand-in for the native engine,
// used by tests and the tickstream demo mode. It advances a fixed-rate
// simulation and serves wire-encoded records through a bind.Core
// adapter, so everything above the boundary runs unmodified against
// it.
package enginesim

import (
	"fmt"
	"sync"
	"time"

	"tickbridge/ffi"
	"tickbridge/game"
	"tickbridge/telemetry"
)

const (
	defaultTickRate    = 120
	defaultPlayerCount = 2

	arenaHalfWidth  = 4096.0
	arenaHalfLength = 5120.0
	arenaCeiling    = 2044.0
	gravity         = -650.0

	chatMinInterval = 500 * time.Millisecond
	maxCommandBytes = 1 << 16
)

// Config tunes the stand-in engine.
type Config struct {
	// TickRate in simulation steps per second. Defaults to 120.
	TickRate int
	// PlayerCount of simulated players. Defaults to 2, capped at the
	// legacy ABI limit.
	PlayerCount int
	// ForecastSlices enables the motion forecast query when positive.
	// Zero mimics the prediction helper process not running.
	ForecastSlices int
	// Logger receives engine diagnostics. Nil discards them.
	Logger telemetry.Logger
}

func (cfg Config) normalized() Config {
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	if cfg.PlayerCount <= 0 {
		cfg.PlayerCount = defaultPlayerCount
	}
	if cfg.PlayerCount > ffi.MaxPlayers {
		cfg.PlayerCount = ffi.MaxPlayers
	}
	if cfg.ForecastSlices > ffi.MaxForecastSlices {
		cfg.ForecastSlices = ffi.MaxForecastSlices
	}
	return cfg
}

// Engine is the simulated core. All state sits behind one mutex; the
// bind.Core adapter encodes a consistent copy per query, which also
// reproduces the real engine's buffer-per-call behavior.
type Engine struct {
	cfg Config

	mu       sync.Mutex
	frame    int32
	elapsed  float32
	ballPos  game.Vector3
	ballVel  game.Vector3
	inputs   map[int32]game.ControllerState
	lastChat time.Time
	renders  uint64
}

// New creates a stand-in engine with a match already loaded.
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:    cfg.normalized(),
		inputs: make(map[int32]game.ControllerState),
	}
	e.resetLocked()
	return e
}

// Run drives the fixed-rate tick loop until the stop channel closes.
func (e *Engine) Run(stop <-chan struct{}) {
	if e == nil {
		return
	}
	tickRate := e.cfg.TickRate
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	budget := 1.0 / float64(tickRate)
	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt <= 0 {
				dt = budget
			} else if dt > 4*budget {
				dt = 4 * budget
			}
			last = now
			e.Step(dt)
		}
	}
}

// Step advances the simulation by dt seconds. Exposed so tests can
// tick deterministically without the wall-clock loop.
func (e *Engine) Step(dt float64) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.frame++
	e.elapsed += float32(dt)

	e.ballVel.Z += float32(gravity * dt)
	e.ballPos.X += e.ballVel.X * float32(dt)
	e.ballPos.Y += e.ballVel.Y * float32(dt)
	e.ballPos.Z += e.ballVel.Z * float32(dt)
	if e.ballPos.X > arenaHalfWidth || e.ballPos.X < -arenaHalfWidth {
		e.ballVel.X = -e.ballVel.X
	}
	if e.ballPos.Y > arenaHalfLength || e.ballPos.Y < -arenaHalfLength {
		e.ballVel.Y = -e.ballVel.Y
	}
	if e.ballPos.Z < 0 {
		e.ballPos.Z = 0
		e.ballVel.Z = -e.ballVel.Z * 0.6
	}
	if e.ballPos.Z > arenaCeiling {
		e.ballPos.Z = arenaCeiling
		e.ballVel.Z = -e.ballVel.Z
	}
}

// Frame returns the current tick counter.
func (e *Engine) Frame() int32 {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// Input returns the last input applied for a player.
func (e *Engine) Input(playerIndex int32) (game.ControllerState, bool) {
	if e == nil {
		return game.ControllerState{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	controls, ok := e.inputs[playerIndex]
	return controls, ok
}

// RenderGroups returns how many render commands were accepted.
func (e *Engine) RenderGroups() uint64 {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renders
}

func (e *Engine) resetLocked() {
	e.frame = 0
	e.elapsed = 0
	e.ballPos = game.Vector3{Z: 93}
	e.ballVel = game.Vector3{X: 800, Y: 650, Z: 300}
	for index := range e.inputs {
		delete(e.inputs, index)
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Printf(format, args...)
	}
}

func (e *Engine) playerBody(index int, frame int32) game.BodyState {
	spacing := 2.0 * arenaHalfWidth / float64(e.cfg.PlayerCount+1)
	return game.BodyState{
		Frame:    frame,
		Location: game.Vector3{X: float32(-arenaHalfWidth + spacing*float64(index+1)), Y: 0, Z: 17},
		Rotation: game.Quaternion{W: 1},
	}
}

func (e *Engine) physicsTickLocked() game.PhysicsTick {
	players := make([]game.BodyState, e.cfg.PlayerCount)
	for i := range players {
		players[i] = e.playerBody(i, e.frame)
	}
	ball := game.BodyState{
		Frame:    e.frame,
		Location: e.ballPos,
		Rotation: game.Quaternion{W: 1},
		Velocity: e.ballVel,
	}
	return game.PhysicsTick{Ball: &ball, Players: players}
}

func (e *Engine) snapshotLocked() game.Snapshot {
	tick := e.physicsTickLocked()
	players := make([]game.PlayerState, len(tick.Players))
	for i := range tick.Players {
		body := tick.Players[i]
		players[i] = game.PlayerState{
			Body:  &body,
			Name:  fmt.Sprintf("sim-%d", i),
			Team:  int32(i % 2),
			Boost: 33,
		}
	}
	return game.Snapshot{
		Info:    &game.GameInfo{SecondsElapsed: e.elapsed, Frame: e.frame},
		Ball:    tick.Ball,
		Players: players,
	}
}

func (e *Engine) fieldLayoutLocked() game.FieldLayout {
	return game.FieldLayout{
		Zones: []game.Zone{
			{Location: game.Vector3{Y: -arenaHalfLength}, Team: 0, Width: 1786, Height: 642},
			{Location: game.Vector3{Y: arenaHalfLength}, Team: 1, Width: 1786, Height: 642},
		},
		Pickups: []game.Pickup{
			{Location: game.Vector3{X: -3072, Y: -4096}, FullRecharge: true},
			{Location: game.Vector3{X: 3072, Y: -4096}, FullRecharge: true},
			{Location: game.Vector3{X: -3072, Y: 4096}, FullRecharge: true},
			{Location: game.Vector3{X: 3072, Y: 4096}, FullRecharge: true},
			{Location: game.Vector3{Y: 0}, FullRecharge: false},
		},
	}
}

func (e *Engine) forecastLocked() (game.MotionForecast, bool) {
	if e.cfg.ForecastSlices <= 0 {
		return game.MotionForecast{}, false
	}
	step := 1.0 / float64(e.cfg.TickRate)
	pos := e.ballPos
	vel := e.ballVel
	slices := make([]game.ForecastSlice, e.cfg.ForecastSlices)
	for i := range slices {
		vel.Z += float32(gravity * step)
		pos.X += vel.X * float32(step)
		pos.Y += vel.Y * float32(step)
		pos.Z += vel.Z * float32(step)
		if pos.Z < 0 {
			pos.Z = 0
			vel.Z = -vel.Z * 0.6
		}
		body := game.BodyState{Frame: e.frame + int32(i) + 1, Location: pos, Velocity: vel, Rotation: game.Quaternion{W: 1}}
		slices[i] = game.ForecastSlice{
			GameSeconds: e.elapsed + float32(step*float64(i+1)),
			Body:        &body,
		}
	}
	return game.MotionForecast{Slices: slices}, true
}
