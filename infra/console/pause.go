package console

import (
	"context"
	"time"
)

// SleepPauser blocks for the requested duration or until ctx is done.
type SleepPauser struct{}

// Pause implements console.Pauser.
func (SleepPauser) Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// NopPauser never blocks.
type NopPauser struct{}

// Pause implements console.Pauser.
func (NopPauser) Pause(context.Context, time.Duration) {}
