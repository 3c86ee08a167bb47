package dispatch

import (
	"time"

	"courier-dispatch/internal/geo"
)

// PickupEstimator converts a courier-to-business distance into a coarse
// time-to-pickup shown in discovery listings.
type PickupEstimator interface {
	Estimate(distanceM float64) time.Duration
}

type linearEstimator struct{}

// NewPickupEstimator - creates the default linear PickupEstimator.
func NewPickupEstimator() PickupEstimator {
	return linearEstimator{}
}

// Estimate returns max(5 minutes, 3 minutes per kilometer).
func (linearEstimator) Estimate(distanceM float64) time.Duration {
	return geo.PickupEstimate(distanceM)
}
