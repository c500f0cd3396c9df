package logging

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives routed events.
type Sink interface {
	Write(Event) error
	Close(context.Context) error
}

// ZerologSink writes events through a zerolog logger.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink wraps the given logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

func (s *ZerologSink) Write(event Event) error {
	if s == nil {
		return nil
	}
	var entry *zerolog.Event
	switch event.Severity {
	case SeverityDebug:
		entry = s.logger.Debug()
	case SeverityInfo:
		entry = s.logger.Info()
	case SeverityWarn:
		entry = s.logger.Warn()
	default:
		entry = s.logger.Error()
	}
	entry = entry.Str("event", string(event.Type)).Time("at", event.Time)
	if event.Frame != 0 {
		entry = entry.Int64("frame", event.Frame)
	}
	if event.Payload != nil {
		entry = entry.Interface("payload", event.Payload)
	}
	for key, value := range event.Extra {
		entry = entry.Interface(key, value)
	}
	entry.Send()
	return nil
}

func (s *ZerologSink) Close(context.Context) error {
	return nil
}

// MemorySink collects events for tests.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func (s *MemorySink) Write(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemorySink) Close(context.Context) error {
	return nil
}

// Events returns a copy of everything written so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
