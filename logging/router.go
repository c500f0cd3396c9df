package logging

import (
	"context"
	"sync"
	"sync/atomic"
)

// Config tunes the router queue.
type Config struct {
	// BufferSize caps the number of events waiting for sinks.
	// Defaults to 256.
	BufferSize int
	// MinSeverity drops events below this severity before queueing.
	MinSeverity Severity
}

// Router fans events out to sinks from a single dispatch goroutine.
// Publish never blocks: when the queue is full the event is dropped
// and counted, never allowed to stall a poll loop.
type Router struct {
	cfg    Config
	clock  Clock
	queue  chan Event
	sinks  []Sink
	closed atomic.Bool
	wg     sync.WaitGroup

	eventsTotal  atomic.Uint64
	droppedTotal atomic.Uint64
}

// RouterStats reports queue health.
type RouterStats struct {
	EventsTotal  uint64
	DroppedTotal uint64
}

// NewRouter starts a router over the given sinks.
func NewRouter(clock Clock, cfg Config, sinks ...Sink) *Router {
	if clock == nil {
		clock = SystemClock{}
	}
	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 256
	}
	r := &Router{
		cfg:   cfg,
		clock: clock,
		queue: make(chan Event, bufferSize),
		sinks: sinks,
	}
	r.wg.Add(1)
	go r.dispatch()
	return r
}

// Publish enqueues an event, stamping the time if unset.
func (r *Router) Publish(_ context.Context, event Event) {
	if r == nil || r.closed.Load() {
		return
	}
	if event.Severity < r.cfg.MinSeverity {
		return
	}
	if event.Time.IsZero() {
		event.Time = r.clock.Now()
	}
	select {
	case r.queue <- event:
		r.eventsTotal.Add(1)
	default:
		r.droppedTotal.Add(1)
	}
}

// Stats returns the running totals.
func (r *Router) Stats() RouterStats {
	if r == nil {
		return RouterStats{}
	}
	return RouterStats{
		EventsTotal:  r.eventsTotal.Load(),
		DroppedTotal: r.droppedTotal.Load(),
	}
}

// Close stops intake, flushes the queue, and closes every sink. The
// context bounds how long the flush may take.
func (r *Router) Close(ctx context.Context) error {
	if r == nil || !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(r.queue)

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	var firstErr error
	for _, sink := range r.sinks {
		if err := sink.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Router) dispatch() {
	defer r.wg.Done()
	for event := range r.queue {
		for _, sink := range r.sinks {
			// Sink errors are counted as drops; there is nowhere
			// better to report them from here.
			if err := sink.Write(event); err != nil {
				r.droppedTotal.Add(1)
			}
		}
	}
}
