// Package geofence is the proximity engine behind drop collection: great-circle
// distance, coordinate bucketing, reveal-distance evaluation, marker
// presentation and reachability-gated collect handlers.
//
// Everything here is pure over its inputs except Session, which holds the
// latest snapshot for one viewer and swaps its bindings atomically.
package geofence

import (
	"math"

	"zumap/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between a and b.
// Inputs are not range checked; NaN inputs yield NaN.
func DistanceMeters(a, b entity.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// Rounding can push h a hair past 1 for antipodal points.
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
