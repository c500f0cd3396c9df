package enginesim_test

import (
	"errors"
	"testing"
	"time"

	"tickbridge"
	"tickbridge/game"
	"tickbridge/internal/enginesim"
)

// End-to-end: the full client stack over the stand-in engine, the way
// tickstream -fake runs it.
func TestClientOverStandInEngine(t *testing.T) {
	engine := enginesim.New(enginesim.Config{PlayerCount: 2})
	client := tickbridge.NewClient(engine.Core(), tickbridge.Options{})

	stop := make(chan struct{})
	defer close(stop)
	go engine.Run(stop)

	physicist := client.Physicist()
	first, err := physicist.NextWithTimeout(2 * time.Second)
	if err != nil {
		t.Fatalf("first tick never arrived: %v", err)
	}
	if first.Ball == nil {
		t.Fatalf("expected a ball in the first tick")
	}

	second, err := physicist.NextWithTimeout(2 * time.Second)
	if err != nil {
		t.Fatalf("second tick never arrived: %v", err)
	}
	if second.Ball.Frame == first.Ball.Frame {
		t.Fatalf("expected a new frame, got %d twice", first.Ball.Frame)
	}
}

func TestClientCommandErrors(t *testing.T) {
	engine := enginesim.New(enginesim.Config{PlayerCount: 1})
	client := tickbridge.NewClient(engine.Core(), tickbridge.Options{})

	if err := client.SendPlayerInput(0, game.ControllerState{Throttle: 1}); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}

	err := client.SendPlayerInput(4, game.ControllerState{})
	var bridgeErr *tickbridge.Error
	if !errors.As(err, &bridgeErr) {
		t.Fatalf("expected *tickbridge.Error, got %v", err)
	}
}
