// Package timeutil hosts internal timing helpers.
package timeutil

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done, whichever comes first. It returns
// nil when the full duration elapsed and ctx.Err() otherwise. A non-positive d
// returns immediately without consulting ctx.
//
// Example:
//
//	if err := timeutil.Sleep(ctx, time.Second); err != nil {
//		return err
//	}
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
