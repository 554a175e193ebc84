package geofence

import (
	"math"

	"zumap/internal/domain/entity"
)

// DefaultRevealDistance applies to drops stored without a usable reveal distance.
const DefaultRevealDistance = 20.0

// Reachability is the derived state of one drop for one user position.
type Reachability struct {
	DistanceMeters float64 `json:"distance_meters"`
	RevealDistance float64 `json:"reveal_distance"`
	InReach        bool    `json:"in_reach"`
}

// ResolveRevealDistance returns the drop's reveal distance, falling back to
// DefaultRevealDistance when the stored value is missing, non-positive or not finite.
func ResolveRevealDistance(drop entity.Drop) float64 {
	r := drop.RevealDistance
	if !(r > 0) || math.IsInf(r, 0) {
		return DefaultRevealDistance
	}

	return r
}

// Evaluate decides whether drop is collectable from position. A nil position
// yields ok == false: nothing is reachable without a known location.
// Results are never cached; callers re-evaluate on every position change.
func Evaluate(drop entity.Drop, position *entity.Coordinate) (result Reachability, ok bool) {
	if position == nil {
		return Reachability{}, false
	}

	distance := DistanceMeters(*position, drop.Position)
	reveal := ResolveRevealDistance(drop)

	return Reachability{
		DistanceMeters: distance,
		RevealDistance: reveal,
		InReach:        isFinite(distance) && distance <= reveal,
	}, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
