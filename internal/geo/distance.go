// Package geo provides great-circle distance and coarse pickup-time
// estimation. Results are used for ranking and filtering only, never for
// billing, so floating-point approximation is acceptable.
package geo

import (
	"math"
	"time"

	"courier-dispatch/internal/domain"
)

// earthRadiusM is the mean Earth radius in meters.
const earthRadiusM = 6371000.0

// Distance returns the Haversine distance between two points in meters.
// Inputs are assumed to be well-formed coordinates; NaN or out-of-range
// values are a caller error.
func Distance(a, b domain.GeoPoint) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

const (
	minPickupEstimate  = 5 * time.Minute
	pickupMinutesPerKm = 3
)

// PickupEstimate returns a coarse time-to-pickup for a courier at the given
// distance: max(5 minutes, 3 minutes per kilometer). A linear heuristic, not
// a routing engine.
func PickupEstimate(distanceM float64) time.Duration {
	est := time.Duration(distanceM / 1000 * pickupMinutesPerKm * float64(time.Minute))
	if est < minPickupEstimate {
		return minPickupEstimate
	}
	return est
}
