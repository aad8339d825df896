package process

import (
	"github.com/opkit/std/v1/observability"
)

// Logger defines the interface for logging operations in the process package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=process
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Tracker wraps units of work with lifecycle logging, duration measurement,
// and optional tracing. It holds no mutable state after construction and is
// safe for concurrent use by multiple goroutines.
//
// Tracker does not suppress log emissions itself; level filtering is the
// logger's concern.
type Tracker struct {
	// logger receives the start and outcome log lines
	logger Logger

	// observer provides optional observability hooks for tracked invocations
	observer observability.Observer
}

// NewTracker creates a Tracker that emits lifecycle logs through the given
// logger. The logger must be safe for concurrent use.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//	tracker := process.NewTracker(log)
func NewTracker(logger Logger) *Tracker {
	return &Tracker{
		logger: logger,
	}
}

// WithObserver sets the observer for this tracker and returns the tracker for
// method chaining. The observer receives one event per completed invocation
// with the process name, outcome, duration, and metadata.
//
// Example:
//
//	tracker := process.NewTracker(log).WithObserver(metrics.NewProcessObserver(m))
func (t *Tracker) WithObserver(observer observability.Observer) *Tracker {
	t.observer = observer
	return t
}
