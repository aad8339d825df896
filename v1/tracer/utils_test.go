package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// nopLogger satisfies the Logger interface for tests that don't care about
// log output.
type nopLogger struct{}

func (nopLogger) Info(msg string, err error, fields ...map[string]interface{})  {}
func (nopLogger) Debug(msg string, err error, fields ...map[string]interface{}) {}
func (nopLogger) Warn(msg string, err error, fields ...map[string]interface{})  {}
func (nopLogger) Error(msg string, err error, fields ...map[string]interface{}) {}
func (nopLogger) Fatal(msg string, err error, fields ...map[string]interface{}) {}

func newTestTracer() *Tracer {
	return NewClient(Config{
		ServiceName:  "test-service",
		AppEnv:       "test",
		EnableExport: false,
	}, nopLogger{})
}

// recordedSpan runs fn against a span captured by an in-memory recorder and
// returns the ended span for inspection.
func recordedSpan(t *testing.T, tc *Tracer, fn func(span traceSpan.Span)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("").Start(context.Background(), "test-span")
	fn(span)
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(spans))
	}
	return spans[0]
}

func TestStartSpanReturnsValidSpanContext(t *testing.T) {
	tc := newTestTracer()

	ctx, span := tc.StartSpan(context.Background(), "operation")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Fatal("expected a valid span context")
	}
	if got := traceSpan.SpanContextFromContext(ctx); got.TraceID() != span.SpanContext().TraceID() {
		t.Error("expected the returned context to carry the span")
	}
}

func TestCarrierRoundTripPreservesTraceID(t *testing.T) {
	tc := newTestTracer()

	ctx, span := tc.StartSpan(context.Background(), "outgoing")
	defer span.End()

	carrier := tc.GetCarrier(ctx)
	if _, ok := carrier["traceparent"]; !ok {
		t.Fatalf("expected a traceparent header, got %v", carrier)
	}

	restored := tc.SetCarrierOnContext(context.Background(), carrier)
	got := traceSpan.SpanContextFromContext(restored)
	if got.TraceID() != span.SpanContext().TraceID() {
		t.Errorf("expected trace id %s to survive the round trip, got %s",
			span.SpanContext().TraceID(), got.TraceID())
	}
}

func TestSetAttributesConvertsSupportedTypes(t *testing.T) {
	tc := newTestTracer()

	span := recordedSpan(t, tc, func(span traceSpan.Span) {
		tc.SetAttributes(span, map[string]interface{}{
			"string": "value",
			"int":    1,
			"int64":  int64(2),
			"float":  1.5,
			"bool":   true,
			"other":  time.Second,
		})
	})

	want := map[attribute.Key]string{
		"string": "value",
		"other":  "1s",
	}
	got := make(map[attribute.Key]attribute.Value)
	for _, attr := range span.Attributes() {
		got[attr.Key] = attr.Value
	}

	for key, expected := range want {
		if got[key].Emit() != expected {
			t.Errorf("attribute %s: expected %q, got %q", key, expected, got[key].Emit())
		}
	}
	if got["int"].AsInt64() != 1 || got["int64"].AsInt64() != 2 {
		t.Error("expected integer attributes to be stored as int64")
	}
	if got["float"].AsFloat64() != 1.5 {
		t.Error("expected float attribute to be stored as float64")
	}
	if !got["bool"].AsBool() {
		t.Error("expected bool attribute to be stored as bool")
	}
}

func TestRecordErrorOnSpanSetsErrorStatus(t *testing.T) {
	tc := newTestTracer()
	boom := errors.New("downstream unavailable")

	span := recordedSpan(t, tc, func(span traceSpan.Span) {
		tc.RecordErrorOnSpan(span, boom)
	})

	if span.Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", span.Status().Code)
	}
	if span.Status().Description != "downstream unavailable" {
		t.Errorf("expected the error message as description, got %q", span.Status().Description)
	}
	if len(span.Events()) == 0 {
		t.Error("expected a recorded error event")
	}
}
