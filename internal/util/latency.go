package util

import (
	"context"
	"time"
)

// SimulateLatency blocks for d or until ctx is done, whichever comes first.
// The in-memory backend uses it to mimic a remote collaborator's response
// time; with d <= 0 it only reports ctx cancellation.
func SimulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
