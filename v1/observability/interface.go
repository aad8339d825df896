package observability

import "time"

// Outcome classifies how an observed operation ended.
type Outcome string

const (
	// OutcomeSuccess indicates the operation completed normally.
	OutcomeSuccess Outcome = "success"

	// OutcomeFailure indicates the operation returned an error.
	OutcomeFailure Outcome = "failure"
)

// OperationContext carries everything an observer needs to know about one
// completed operation. It is passed by value; observers must not assume the
// Metadata map stays untouched after ObserveOperation returns.
type OperationContext struct {
	// Component is the instrumentation package that produced the event,
	// e.g. "process".
	Component string

	// Operation is the kind of action performed within the component,
	// e.g. "track".
	Operation string

	// Resource is the caller-supplied name of the thing being operated on.
	// For tracked processes this is the process name.
	Resource string

	// Duration is the measured wall-clock time of the operation.
	Duration time.Duration

	// DurationMillis is Duration expressed as fractional milliseconds,
	// matching the value written to the completion log line.
	DurationMillis float64

	// Error is the error the operation returned, or nil on success.
	Error error

	// Outcome is the success/failure classification derived from Error.
	Outcome Outcome

	// Metadata is the caller-supplied structured context, if any.
	Metadata map[string]interface{}
}

// Observer receives a notification for every completed operation.
// Implementations must be safe for concurrent use; instrumented components
// may call ObserveOperation from many goroutines at once.
type Observer interface {
	ObserveOperation(op OperationContext)
}
