package metrics

import (
	"github.com/opkit/std/v1/observability"
)

// ProcessObserver adapts a Metrics instance to the observability.Observer
// interface, so components that emit operation events (such as the process
// tracker) feed the built-in Prometheus metrics without depending on this
// package.
//
// Usage:
//
//	m := metrics.NewMetrics(cfg)
//	tracker := process.NewTracker(log).WithObserver(metrics.NewProcessObserver(m))
type ProcessObserver struct {
	metrics *Metrics
}

// NewProcessObserver creates an observer that records operation events on the
// given Metrics instance.
func NewProcessObserver(m *Metrics) *ProcessObserver {
	return &ProcessObserver{metrics: m}
}

// ObserveOperation records one completed operation: the outcome counter is
// incremented and the duration histogram observed, both labeled by the
// operation's resource name and outcome.
func (o *ProcessObserver) ObserveOperation(op observability.OperationContext) {
	if o == nil || o.metrics == nil {
		return
	}

	status := string(op.Outcome)
	o.metrics.processTotal.WithLabelValues(op.Resource, status).Inc()
	o.metrics.processDuration.WithLabelValues(op.Resource, status).Observe(op.Duration.Seconds())
}
