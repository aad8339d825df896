package process

import (
	"time"

	"github.com/opkit/std/v1/observability"
)

// observeProcess notifies the observer about a completed invocation if one is
// configured. This is used internally to feed metrics backends without
// coupling the tracker to any of them.
func (t *Tracker) observeProcess(name string, duration time.Duration, err error, fields []map[string]interface{}) {
	if t == nil || t.observer == nil {
		return
	}

	outcome := observability.OutcomeSuccess
	if err != nil {
		outcome = observability.OutcomeFailure
	}

	t.observer.ObserveOperation(observability.OperationContext{
		Component:      "process",
		Operation:      "track",
		Resource:       name,
		Duration:       duration,
		DurationMillis: durationMillis(duration),
		Error:          err,
		Outcome:        outcome,
		Metadata:       mergeFields(fields),
	})
}
