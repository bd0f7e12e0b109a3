package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// asyncTimeout bounds a background hand-off such as starting a cleanup
// workflow.
const asyncTimeout = 10 * time.Second

// runAsync is swapped for a synchronous runner in tests.
var runAsync = safeAsync

// safeAsync runs fn on its own goroutine, detached from any request context,
// and logs the outcome.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("async operation succeeded", "op", op)
	}()
}
