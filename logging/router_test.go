package logging

import (
	"context"
	"testing"
	"time"
)

func TestRouterDeliversToSinks(t *testing.T) {
	sink := &MemorySink{}
	fixed := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	router := NewRouter(ClockFunc(func() time.Time { return fixed }), Config{}, sink)

	router.Publish(context.Background(), Event{
		Type:     EventTickDelivered,
		Severity: SeverityInfo,
		Frame:    42,
	})
	router.Publish(context.Background(), Event{
		Type:     EventPollTimeout,
		Severity: SeverityWarn,
	})

	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	events := sink.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventTickDelivered || events[0].Frame != 42 {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if !events[0].Time.Equal(fixed) {
		t.Fatalf("expected the router to stamp the clock time, got %v", events[0].Time)
	}

	stats := router.Stats()
	if stats.EventsTotal != 2 || stats.DroppedTotal != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRouterFiltersBelowMinSeverity(t *testing.T) {
	sink := &MemorySink{}
	router := NewRouter(nil, Config{MinSeverity: SeverityWarn}, sink)

	router.Publish(context.Background(), Event{Type: EventTickDelivered, Severity: SeverityDebug})
	router.Publish(context.Background(), Event{Type: EventBroadcastFailure, Severity: SeverityError})

	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected only the error event, got %d events", len(events))
	}
	if events[0].Type != EventBroadcastFailure {
		t.Fatalf("unexpected surviving event: %+v", events[0])
	}
}

func TestRouterPublishAfterCloseIsNoop(t *testing.T) {
	sink := &MemorySink{}
	router := NewRouter(nil, Config{}, sink)
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	router.Publish(context.Background(), Event{Type: EventTickDelivered, Severity: SeverityInfo})

	if stats := router.Stats(); stats.EventsTotal != 0 {
		t.Fatalf("expected no intake after close, got %+v", stats)
	}
	if events := sink.Events(); len(events) != 0 {
		t.Fatalf("expected no events after close, got %d", len(events))
	}
}

func TestSeverityStrings(t *testing.T) {
	cases := map[Severity]string{
		SeverityDebug: "debug",
		SeverityInfo:  "info",
		SeverityWarn:  "warn",
		SeverityError: "error",
		Severity(42):  "unknown",
	}
	for severity, want := range cases {
		if got := severity.String(); got != want {
			t.Fatalf("severity %d: expected %q, got %q", severity, want, got)
		}
	}
}
