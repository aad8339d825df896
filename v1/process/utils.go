package process

import (
	"time"
)

// durationMillis converts a duration to fractional milliseconds, preserving
// sub-millisecond precision for the completion and failure log lines.
func durationMillis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// logAt dispatches a message to the logger method matching the level.
// Unknown levels fall back to Info.
func (t *Tracker) logAt(level Level, msg string, err error, fields ...map[string]interface{}) {
	switch level {
	case LevelDebug:
		t.logger.Debug(msg, err, fields...)
	case LevelWarning:
		t.logger.Warn(msg, err, fields...)
	case LevelError:
		t.logger.Error(msg, err, fields...)
	default:
		t.logger.Info(msg, err, fields...)
	}
}

// withDuration returns a fresh slice of the caller's field maps plus the
// duration map for the outcome log line. The caller's slice is never appended
// to: metadata is opaque to the tracker, and in a tracked group the same
// slice is shared across goroutines.
func withDuration(fields []map[string]interface{}, ms float64) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(fields)+1)
	out = append(out, fields...)
	return append(out, map[string]interface{}{"duration_ms": ms})
}

// mergeFields collapses the variadic field maps into a single map for the
// observer notification. Later maps override earlier ones, matching the
// logger's behavior. Returns nil when no fields were supplied.
func mergeFields(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) == 1 {
		return fields[0]
	}

	merged := make(map[string]interface{})
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			merged[key] = value
		}
	}
	return merged
}
