package process

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope reported on spans created by this
// package.
const tracerName = "github.com/opkit/std/v1/process"

// statusAttribute carries the invocation outcome on the span.
const statusAttribute = "process.status"

// Track runs the operation with DefaultOptions, emitting a start log line
// before it runs and a completion or failure line after, with the elapsed
// time in fractional milliseconds. The optional field maps are attached to
// every log line of the invocation.
//
// The operation receives a context carrying the invocation's span (when
// tracing is active) and whatever cancellation the caller put in ctx; the
// tracker itself never cancels the operation. Errors are returned to the
// caller unchanged.
func (t *Tracker) Track(ctx context.Context, name string, operation func(context.Context) error, fields ...map[string]interface{}) error {
	return t.TrackWithOptions(ctx, name, operation, DefaultOptions, fields...)
}

// TrackWithOptions is Track with explicit per-invocation configuration.
//
// The invocation proceeds in a fixed order: the start line is logged, the
// monotonic start time is captured, the span is started (and handed to
// opts.ConfigureSpan when recording), then the operation runs. After it
// returns, the outcome line is logged and the span is tagged with
// process.status before the operation's result is passed back. The span is
// always ended exactly once, as the final step, even if a log emission or the
// ConfigureSpan hook panics.
func (t *Tracker) TrackWithOptions(ctx context.Context, name string, operation func(context.Context) error, opts Options, fields ...map[string]interface{}) error {
	opts = opts.withDefaults()

	t.logAt(opts.StartLevel, fmt.Sprintf("[%s] Starting process", name), nil, fields...)

	start := time.Now()

	provider := opts.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	ctx, span := provider.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if opts.ConfigureSpan != nil && span.IsRecording() {
		opts.ConfigureSpan(span)
	}

	err := operation(ctx)

	elapsed := time.Since(start)
	ms := durationMillis(elapsed)

	if err != nil {
		t.logAt(opts.FailureLevel, fmt.Sprintf("[%s] Failed after %.3fms", name, ms), err,
			withDuration(fields, ms)...)

		if span.IsRecording() {
			span.SetAttributes(attribute.String(statusAttribute, "failure"))
			span.SetStatus(codes.Error, err.Error())
		}

		t.observeProcess(name, elapsed, err, fields)
		return err
	}

	t.logAt(opts.SuccessLevel, fmt.Sprintf("[%s] Completed in %.3fms", name, ms), nil,
		withDuration(fields, ms)...)

	if span.IsRecording() {
		span.SetAttributes(attribute.String(statusAttribute, "success"))
	}

	t.observeProcess(name, elapsed, nil, fields)
	return nil
}

// TrackValue tracks an operation that produces a value alongside its error.
// The semantics are identical to TrackWithOptions; on failure the zero value
// of T is returned with the operation's error unchanged.
//
// Example:
//
//	count, err := process.TrackValue(ctx, tracker, "count-documents",
//		func(ctx context.Context) (int, error) {
//			return store.Count(ctx)
//		}, process.DefaultOptions)
func TrackValue[T any](ctx context.Context, t *Tracker, name string, operation func(context.Context) (T, error), opts Options, fields ...map[string]interface{}) (T, error) {
	var result T

	err := t.TrackWithOptions(ctx, name, func(ctx context.Context) error {
		value, err := operation(ctx)
		if err != nil {
			return err
		}
		result = value
		return nil
	}, opts, fields...)

	return result, err
}
