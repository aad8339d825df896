package process

import (
	"go.opentelemetry.io/otel/trace"
)

// Level is an ordered log severity tier for the three lifecycle emissions.
// The values mirror the logger package's level constants.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Options configures one tracked invocation. The zero value is usable; empty
// levels fall back to the corresponding DefaultOptions level, a nil
// ConfigureSpan is a no-op, and a nil TracerProvider resolves the global
// OpenTelemetry provider.
//
// Options is read-only during a tracked invocation: the tracker never mutates
// it, so a single instance can be shared across concurrent calls.
type Options struct {
	// StartLevel is the severity of the log line emitted before the
	// operation runs. Default: Info.
	StartLevel Level

	// SuccessLevel is the severity of the completion log line.
	// Default: Info.
	SuccessLevel Level

	// FailureLevel is the severity of the failure log line.
	// Default: Error.
	FailureLevel Level

	// ConfigureSpan, when set, is invoked once with the invocation's span
	// immediately after it is created and before the operation runs. It may
	// mutate the span's name and attributes. It is only invoked when the
	// span is recording, i.e. when a tracing SDK with an active listener is
	// installed.
	ConfigureSpan func(span trace.Span)

	// TracerProvider substitutes an explicit span source for the global
	// OpenTelemetry provider.
	TracerProvider trace.TracerProvider
}

// DefaultOptions is the configuration used by Track. Treat it as frozen;
// callers wanting different behavior pass their own Options to
// TrackWithOptions rather than mutating this value.
var DefaultOptions = Options{
	StartLevel:   LevelInfo,
	SuccessLevel: LevelInfo,
	FailureLevel: LevelError,
}

// withDefaults fills empty level fields from DefaultOptions so partially
// populated Options behave predictably.
func (o Options) withDefaults() Options {
	if o.StartLevel == "" {
		o.StartLevel = DefaultOptions.StartLevel
	}
	if o.SuccessLevel == "" {
		o.SuccessLevel = DefaultOptions.SuccessLevel
	}
	if o.FailureLevel == "" {
		o.FailureLevel = DefaultOptions.FailureLevel
	}
	return o
}
