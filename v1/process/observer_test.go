package process

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/opkit/std/v1/observability"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestObserveProcessNilObserverNoPanic(t *testing.T) {
	tracker := NewTracker(&recordingLogger{})

	// Should not panic.
	err := tracker.Track(t.Context(), "unobserved", func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestWithObserver(t *testing.T) {
	obs := &TestObserver{}
	tracker := NewTracker(&recordingLogger{})

	if tracker.observer != nil {
		t.Fatalf("expected no observer initially")
	}

	out := tracker.WithObserver(obs)
	if out != tracker {
		t.Fatalf("WithObserver should return same instance for chaining")
	}
	if tracker.observer != obs {
		t.Fatalf("expected observer to be set")
	}
}

func TestObserverNotifiedOnSuccess(t *testing.T) {
	obs := &TestObserver{}
	tracker := NewTracker(&recordingLogger{}).WithObserver(obs)

	_ = tracker.Track(t.Context(), "import-documents", func(ctx context.Context) error {
		return nil
	}, map[string]interface{}{"collection": "articles"})

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Component != "process" {
		t.Errorf("expected component process, got %q", ops[0].Component)
	}
	if ops[0].Operation != "track" {
		t.Errorf("expected operation track, got %q", ops[0].Operation)
	}
	if ops[0].Resource != "import-documents" {
		t.Errorf("expected resource import-documents, got %q", ops[0].Resource)
	}
	if ops[0].Outcome != observability.OutcomeSuccess {
		t.Errorf("expected success outcome, got %q", ops[0].Outcome)
	}
	if ops[0].Error != nil {
		t.Errorf("expected nil error, got %v", ops[0].Error)
	}
	if ops[0].Duration < 0 {
		t.Errorf("expected non-negative duration, got %v", ops[0].Duration)
	}
	if ops[0].Metadata == nil || ops[0].Metadata["collection"] != "articles" {
		t.Errorf("expected metadata collection=articles, got %#v", ops[0].Metadata)
	}
}

func TestObserverNotifiedOnFailure(t *testing.T) {
	obs := &TestObserver{}
	tracker := NewTracker(&recordingLogger{}).WithObserver(obs)
	boom := errors.New("boom")

	_ = tracker.Track(t.Context(), "import-documents", func(ctx context.Context) error {
		return boom
	})

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Outcome != observability.OutcomeFailure {
		t.Errorf("expected failure outcome, got %q", ops[0].Outcome)
	}
	if ops[0].Error != boom {
		t.Errorf("expected the original error, got %v", ops[0].Error)
	}
}

func TestMergeFieldsLaterMapsWin(t *testing.T) {
	merged := mergeFields([]map[string]interface{}{
		{"key": "first", "only": 1},
		{"key": "second"},
	})

	if merged["key"] != "second" {
		t.Errorf("expected later map to win, got %v", merged["key"])
	}
	if merged["only"] != 1 {
		t.Errorf("expected earlier unique key to survive, got %v", merged["only"])
	}
}

func TestMergeFieldsEmptyReturnsNil(t *testing.T) {
	if merged := mergeFields(nil); merged != nil {
		t.Errorf("expected nil for no fields, got %#v", merged)
	}
}
