package tickbridge

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultPollTimeout bounds a blocking poll. Ten seconds with no new
// tick means the engine froze or crashed; waiting longer will not
// help.
const DefaultPollTimeout = 10 * time.Second

// pollFloor spaces out boundary queries. The engine ticks at 120 Hz,
// so one poll per millisecond observes every tick with room to spare;
// polling much faster than this has been seen to destabilize it.
const pollFloor = time.Millisecond

func newPollLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(pollFloor), 1)
}

// pollUntil keeps calling poll at the limiter's cadence until it
// produces a value, poll fails, or the timeout elapses. The deadline
// is also applied to the limiter wait, so the total overshoot is at
// most one poll interval.
func pollUntil[T any](limiter *rate.Limiter, timeout time.Duration, poll func() (T, bool, error)) (T, error) {
	var zero T
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		if err := limiter.Wait(ctx); err != nil {
			return zero, ErrPollTimeout
		}
		value, ok, err := poll()
		if err != nil {
			return zero, err
		}
		if ok {
			return value, nil
		}
		select {
		case <-ctx.Done():
			return zero, ErrPollTimeout
		default:
		}
	}
}
