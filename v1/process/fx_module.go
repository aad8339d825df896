package process

import (
	"go.uber.org/fx"

	"github.com/opkit/std/v1/logger"
)

// FXModule defines the Fx module for the process package.
// This module integrates the process tracker into an Fx-based application by
// adapting the library logger to the tracker's Logger interface and providing
// the tracker factory.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    process.FXModule,
//	    fx.Invoke(func(tracker *process.Tracker) {
//	        // tracker.Track(...)
//	    }),
//	    // other modules...
//	)
//
// Dependencies required by this module:
//   - A *logger.Logger instance must be available in the dependency injection
//     container (provided by logger.FXModule)
var FXModule = fx.Module("process",
	fx.Provide(
		func(log *logger.Logger) Logger { return log },
		NewTracker,
	),
)
