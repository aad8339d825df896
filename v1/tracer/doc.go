// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed
// tracing in Go applications. It abstracts away the complexity of OpenTelemetry
// to provide a clean, easy-to-use API for creating and managing trace spans.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation
//   - Integration with OpenTelemetry backends
//
// Basic Usage:
//
//	import (
//		"context"
//
//		"github.com/opkit/std/v1/logger"
//		"github.com/opkit/std/v1/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "my-service",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"user.id":    "123",
//		"request.id": "abc-xyz",
//	})
//
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return nil, err
//	}
//
// NewClient installs its provider as the global OpenTelemetry tracer provider,
// so instrumentation that resolves the provider globally (for example the
// process package's tracker) emits spans through it without explicit wiring.
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Best Practices:
//
//   - Create spans for significant operations in your code
//   - Always defer span.End() immediately after creating a span
//   - Use descriptive span names that identify the operation
//   - Add relevant attributes to provide context
//   - Record errors when operations fail
//   - Ensure trace context is properly propagated between services
//
// Thread Safety:
//
// All methods on the Tracer type are safe for concurrent use by multiple
// goroutines.
package tracer
