// Package observability defines the observer contract shared by the
// instrumentation packages in this library.
//
// The package deliberately has no third-party dependencies: it only declares
// the Observer interface and the OperationContext value passed to it. Concrete
// backends live elsewhere (for example the Prometheus-based ProcessObserver in
// the metrics package), so consumers choose their own metrics or tracing
// backend without this contract dragging one in.
//
// Usage:
//
//	type countingObserver struct{ n int }
//
//	func (c *countingObserver) ObserveOperation(op observability.OperationContext) {
//		c.n++
//	}
//
//	tracker := process.NewTracker(log).WithObserver(&countingObserver{})
package observability
