package tracer

// Config defines the configuration structure for the tracer.
type Config struct {
	// ServiceName identifies the service in exported trace resources.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment recorded on every span,
	// e.g. "development" or "production".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP HTTP.
	// When false the provider still records spans locally so in-process
	// consumers (tests, the process tracker) observe them, but nothing
	// leaves the process.
	//
	// The exporter endpoint is taken from the standard OTLP environment
	// variables (OTEL_EXPORTER_OTLP_ENDPOINT and friends).
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
