// Package logging routes structured bridge events to pluggable sinks.
// It is used by the tooling around the bridge (stream hub, demos); the
// library core itself only depends on the telemetry.Logger interface.
package logging

import (
	"context"
	"time"
)

type EventType string

// Event types emitted by the bridge and its tooling.
const (
	EventTickDelivered    EventType = "tick_delivered"
	EventPollTimeout      EventType = "poll_timeout"
	EventEngineAbsent     EventType = "engine_absent"
	EventSubscriberJoin   EventType = "subscriber_join"
	EventSubscriberLeave  EventType = "subscriber_leave"
	EventBroadcastFailure EventType = "broadcast_failure"
)

type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one structured occurrence worth recording.
type Event struct {
	Type     EventType      `json:"type"`
	Time     time.Time      `json:"time"`
	Severity Severity       `json:"severity"`
	Frame    int64          `json:"frame,omitempty"`
	Payload  any            `json:"payload,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// Publisher accepts events for routing.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// PublisherFunc adapts functions into the Publisher interface.
type PublisherFunc func(ctx context.Context, event Event)

func (f PublisherFunc) Publish(ctx context.Context, event Event) {
	if f == nil {
		return
	}
	f(ctx, event)
}

// NopPublisher discards every event.
func NopPublisher() Publisher {
	return PublisherFunc(func(context.Context, Event) {})
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts functions into the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
