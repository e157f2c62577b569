package ports

import (
	"context"

	"terrafarm/internal/domain/climate"
	"terrafarm/internal/domain/crop"
	"terrafarm/internal/domain/farm"
)

// ClimateProvider supplies a rolling-window weather observation for a
// location. Implementations may block on the network; callers treat any
// error as "use the fallback observation", never as a simulation failure.
type ClimateProvider interface {
	Observe(ctx context.Context, loc farm.Location) (climate.Observation, error)
}

// RiskAdvisor supplies drought/frost/heatwave severities in [0,1]. The
// engine only consumes the signals; it never computes them.
type RiskAdvisor interface {
	Signals(ctx context.Context, loc farm.Location) (climate.RiskSignals, error)
}

// CropCatalog maps crop identifiers to agronomic parameters.
type CropCatalog interface {
	Get(cropID string) (crop.Crop, bool)
	All() []crop.Crop
	// Suggest returns the closest known crop id for a misspelled one, or ""
	// when nothing is close enough.
	Suggest(cropID string) string
}
