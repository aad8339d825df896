// Package logger provides structured logging functionality for Go applications.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing
// integration, and flexible output formatting. It integrates with the fx
// dependency injection framework for easy incorporation into applications.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger struct: The concrete zap-backed implementation
//   - NewLoggerClient constructor: Returns *Logger (concrete type)
//   - FX module: Provides *Logger for dependency injection
//
// Consumers that want to stay implementation-agnostic declare their own narrow
// interface (see process.Logger or tracer.Logger) which *Logger satisfies
// structurally.
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/opkit/std/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//		"ip":      "192.168.1.1",
//	})
//
// # Level Dispatch
//
// Beyond the fixed-level methods, Log selects the level at runtime. This is
// what the process package uses to honor per-outcome level configuration:
//
//	log.Log(logger.Warning, "Cache miss", nil, nil)
//
// # Context-Aware Logging
//
// When tracing is enabled (EnableTracing: true), the *WithContext variants
// extract the active OpenTelemetry span from the context and attach trace_id
// and span_id fields to the entry, correlating logs with distributed traces:
//
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//		"request_id": "abc-123",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_ENABLE_TRACING=true      # Enable distributed tracing integration
//
// # Thread Safety
//
// All methods on *Logger are safe for concurrent use by multiple goroutines.
package logger
