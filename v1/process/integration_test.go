package process

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/opkit/std/v1/logger"
	"github.com/opkit/std/v1/metrics"
)

// These tests wire the tracker to the real logger and metrics packages, the
// way an application assembled from this library would.

func newZapBackedTracker(level zapcore.LevelEnabler) (*Tracker, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewTracker(&logger.Logger{Zap: zap.New(core)}), logs
}

func TestTrackerWithLibraryLogger(t *testing.T) {
	tracker, logs := newZapBackedTracker(zapcore.DebugLevel)
	boom := errors.New("boom")

	err := tracker.Track(t.Context(), "index-batch", func(ctx context.Context) error {
		return boom
	}, map[string]interface{}{"batch": 7})
	require.Same(t, boom, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, "[index-batch] Starting process", entries[0].Message)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.EqualValues(t, 7, entries[0].ContextMap()["batch"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Contains(t, entries[1].Message, "[index-batch] Failed after ")
	require.Equal(t, "boom", entries[1].ContextMap()["error"])
	require.GreaterOrEqual(t, entries[1].ContextMap()["duration_ms"].(float64), 0.0)
}

func TestSuppressedLoggerStillRecordsSpans(t *testing.T) {
	// A level enabler above Fatal drops every entry; tracing must be
	// unaffected since logging and tracing are independent paths.
	tracker, logs := newZapBackedTracker(zapcore.FatalLevel + 1)
	provider, recorder := newRecordingProvider()

	configured := false
	err := tracker.TrackWithOptions(t.Context(), "silent-op", func(ctx context.Context) error {
		return nil
	}, Options{
		TracerProvider: provider,
		ConfigureSpan:  func(span oteltrace.Span) { configured = true },
	})
	require.NoError(t, err)

	require.Empty(t, logs.All())
	require.Len(t, recorder.Ended(), 1)
	require.True(t, configured)

	status, ok := spanAttribute(recorder.Ended()[0], statusAttribute)
	require.True(t, ok)
	require.Equal(t, "success", status.AsString())
}

func TestTrackerFeedsPrometheusObserver(t *testing.T) {
	m := metrics.NewMetrics(metrics.Config{Address: ":0", ServiceName: "test-service"})
	tracker, _ := newZapBackedTracker(zapcore.DebugLevel)
	tracker.WithObserver(metrics.NewProcessObserver(m))

	require.NoError(t, tracker.Track(t.Context(), "import-documents", func(ctx context.Context) error {
		return nil
	}))
	require.Error(t, tracker.Track(t.Context(), "import-documents", func(ctx context.Context) error {
		return errors.New("boom")
	}))

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	series := 0
	for _, family := range families {
		if family.GetName() == "process_total" {
			series = len(family.GetMetric())
		}
	}
	require.Equal(t, 2, series, "expected one success and one failure series for process_total")
}
