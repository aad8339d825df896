// Package process wraps units of work with lifecycle logging, duration
// measurement, and optional OpenTelemetry tracing.
//
// A tracked invocation emits exactly one start log line when it begins and
// exactly one completion or failure log line when it ends, with the elapsed
// time measured on the monotonic clock. If a tracing SDK is installed, each
// invocation additionally records one span named after the process, tagged
// with its outcome. Errors returned by the wrapped operation propagate to the
// caller unchanged; the tracker never wraps, swallows, or replaces them.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: The narrow logging contract the tracker consumes
//   - Tracker struct: The concrete implementation
//   - NewTracker constructor: Returns *Tracker (concrete type)
//   - FX module: Provides *Tracker for dependency injection
//
// The logger package's *Logger satisfies the Logger interface structurally.
//
// # Basic Usage
//
//	import (
//		"github.com/opkit/std/v1/logger"
//		"github.com/opkit/std/v1/process"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//	tracker := process.NewTracker(log)
//
//	err := tracker.Track(ctx, "import-documents", func(ctx context.Context) error {
//		return importDocuments(ctx)
//	}, map[string]interface{}{
//		"collection": "support-articles",
//	})
//
// For operations that produce a value, use the generic variant:
//
//	count, err := process.TrackValue(ctx, tracker, "count-documents",
//		func(ctx context.Context) (int, error) {
//			return store.Count(ctx)
//		}, process.DefaultOptions)
//
// # Severity Configuration
//
// Options selects the log level per outcome. The defaults log start and
// completion at Info and failure at Error; a busy inner loop can demote its
// chatter to Debug without touching failure visibility:
//
//	opts := process.Options{
//		StartLevel:   process.LevelDebug,
//		SuccessLevel: process.LevelDebug,
//	}
//	err := tracker.TrackWithOptions(ctx, "refresh-cache", refresh, opts)
//
// # Tracing
//
// Spans are created through the global OpenTelemetry tracer provider, so
// installing the tracer package (or any other SDK setup) is all that is needed
// for tracked invocations to show up in traces. Options.TracerProvider
// substitutes an explicit provider for the global one, and
// Options.ConfigureSpan mutates the span (name, attributes) before the
// operation runs:
//
//	opts := process.Options{
//		TracerProvider: tracerClient.Provider(),
//		ConfigureSpan: func(span trace.Span) {
//			span.SetAttributes(attribute.String("collection", collection))
//		},
//	}
//
// Without an installed SDK the provider is a no-op: spans record nothing and
// ConfigureSpan is never invoked.
//
// # Cancellation
//
// The tracker forwards the caller's context to the operation and imposes no
// deadline of its own. An operation that honors cancellation by returning
// ctx.Err() is treated like any other failure: logged at the failure level,
// marked on the span, and returned unchanged.
//
// # Observers
//
// WithObserver attaches an observability.Observer that receives one event per
// completed invocation, carrying the process name, outcome, duration, and
// metadata. The metrics package's ProcessObserver turns these events into
// Prometheus series:
//
//	m := metrics.NewMetrics(metricsCfg)
//	tracker := process.NewTracker(log).WithObserver(metrics.NewProcessObserver(m))
//
// # Thread Safety
//
// A *Tracker holds no mutable state after construction and is safe for
// concurrent use; any number of tracked invocations may run simultaneously.
// The logger, tracer provider, and observer it calls into must themselves be
// safe for concurrent use, which holds for the implementations in this
// library.
package process
