// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepOrWake waits for the duration, for a value on wake, or for ctx to end.
// A nil wake channel never fires.
func SleepOrWake(ctx context.Context, d time.Duration, wake <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wake:
		return nil
	case <-timer.C:
		return nil
	}
}

// NotBefore returns t, or floor when t is earlier. Wall clocks may step
// backwards; audit timestamps must not.
func NotBefore(t, floor time.Time) time.Time {
	if t.Before(floor) {
		return floor
	}
	return t
}
