package process

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TrackGroup runs several named operations concurrently, each wrapped in its
// own tracked invocation with the given options and fields. Every operation
// produces its own start and outcome log pair (and span, when tracing is
// active), exactly as if tracked individually.
//
// The first error cancels the group context handed to the remaining
// operations; operations that honor the cancellation report their own
// failures independently. TrackGroup returns the first error, unchanged.
//
// Example:
//
//	err := tracker.TrackGroup(ctx, map[string]func(context.Context) error{
//		"sync-index":    syncIndex,
//		"refresh-cache": refreshCache,
//	}, process.DefaultOptions)
func (t *Tracker) TrackGroup(ctx context.Context, operations map[string]func(context.Context) error, opts Options, fields ...map[string]interface{}) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, operation := range operations {
		g.Go(func() error {
			return t.TrackWithOptions(ctx, name, operation, opts, fields...)
		})
	}

	return g.Wait()
}
