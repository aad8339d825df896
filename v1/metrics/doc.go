// Package metrics provides Prometheus-based monitoring and metrics collection
// functionality for Go applications.
//
// The metrics package is designed to provide a standardized observability
// approach with features such as configurable HTTP endpoints for metrics
// exposure, automatic runtime instrumentation, and integration with the Fx
// dependency injection framework.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides both *Metrics and MetricsCollector interface for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Built-in counters and histograms for tracked process outcomes
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level collectors
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
//	import "github.com/opkit/std/v1/metrics"
//
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "search-store",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	m.IncrementProcess("import-documents", "success")
//
// Access metrics at: http://localhost:9090/metrics
//
// # Observing Tracked Processes
//
// ProcessObserver adapts the Metrics instance to the observability.Observer
// interface, so every invocation wrapped by the process tracker lands in a
// duration histogram and an outcome counter:
//
//	m := metrics.NewMetrics(cfg)
//	tracker := process.NewTracker(log).WithObserver(metrics.NewProcessObserver(m))
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "search-store",
//			}
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Configuration
//
// The metrics server can be configured via environment variables:
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Register Go runtime collectors
//	METRICS_SERVICE_NAME=search-store          # Constant service label
//
// # Thread Safety
//
// All methods on *Metrics and *ProcessObserver are safe for concurrent use by
// multiple goroutines.
package metrics
