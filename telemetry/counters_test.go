package telemetry

import (
	"testing"
	"time"
)

func TestPollCountersSnapshot(t *testing.T) {
	c := NewPollCounters()

	c.RecordPoll(250 * time.Microsecond)
	c.RecordStale()
	c.RecordPoll(100 * time.Microsecond)
	c.RecordEmpty()
	c.RecordPoll(50 * time.Microsecond)
	c.RecordDelivered(42)
	c.RecordTimeout()

	snap := c.Snapshot()
	if snap.Polls != 3 {
		t.Fatalf("expected 3 polls, got %d", snap.Polls)
	}
	if snap.StaleFrames != 1 || snap.EmptyPolls != 1 {
		t.Fatalf("expected 1 stale and 1 empty, got %d and %d", snap.StaleFrames, snap.EmptyPolls)
	}
	if snap.Delivered != 1 || snap.LastFrame != 42 {
		t.Fatalf("expected 1 delivery of frame 42, got %d of %d", snap.Delivered, snap.LastFrame)
	}
	if snap.Timeouts != 1 {
		t.Fatalf("expected 1 timeout, got %d", snap.Timeouts)
	}
	if snap.LastPollMicros != 50 {
		t.Fatalf("expected last poll at 50us, got %d", snap.LastPollMicros)
	}
}

func TestPollCountersNilReceiver(t *testing.T) {
	var c *PollCounters
	c.RecordPoll(time.Millisecond)
	c.RecordEmpty()
	c.RecordStale()
	c.RecordDelivered(1)
	c.RecordTimeout()
	if snap := c.Snapshot(); snap != (PollSnapshot{}) {
		t.Fatalf("expected a zero snapshot from a nil receiver, got %+v", snap)
	}
}
