package logger

// Level is an ordered log severity tier. The constants below cover the
// non-terminating levels callers can select per message; Fatal is only
// reachable through the dedicated Fatal method since it exits the process.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level is the minimum severity emitted by the logger.
	// 1. production -> Info
	// 2. development -> Debug
	// else -> Info
	Level Level `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName identifies the service in the "service" field attached
	// to every log entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// EnableTracing controls whether the *WithContext methods extract
	// trace_id and span_id from the active OpenTelemetry span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`
}
