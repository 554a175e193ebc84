// Package spatial answers radius queries over drop snapshots.
package spatial

import (
	"cmp"
	"slices"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/geofence"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// boundPadding widens the prefilter box; orb uses a larger earth radius than
// the haversine in geofence.
const boundPadding = 1.01

// NearbyDrop is a drop annotated with its distance from the query point.
type NearbyDrop struct {
	Drop           entity.Drop
	DistanceMeters float64
}

// Nearby returns drops within radius meters of center, nearest first. Drops
// with the same distance keep their input order.
func Nearby(drops []entity.Drop, center entity.Coordinate, radius float64) []NearbyDrop {
	if !center.InRange() || radius < 0 {
		return nil
	}

	origin := orb.Point{center.Lng, center.Lat}
	bound := geo.NewBoundAroundPoint(origin, radius*boundPadding)

	result := make([]NearbyDrop, 0)
	for _, drop := range drops {
		if !drop.Position.InRange() {
			continue
		}
		if !boundContains(bound, orb.Point{drop.Position.Lng, drop.Position.Lat}) {
			continue
		}
		d := geofence.DistanceMeters(center, drop.Position)
		if d <= radius {
			result = append(result, NearbyDrop{Drop: drop, DistanceMeters: d})
		}
	}

	slices.SortStableFunc(result, func(a, b NearbyDrop) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	return result
}

// boundContains is orb.Bound.Contains that also accepts wrapped bounds. A
// bound crossing the antimeridian comes back with Min lng > Max lng and covers
// [Min,180] plus [-180,Max].
func boundContains(b orb.Bound, p orb.Point) bool {
	if b.Min[0] <= b.Max[0] {
		return b.Contains(p)
	}
	if p[1] < b.Min[1] || p[1] > b.Max[1] {
		return false
	}

	return p[0] >= b.Min[0] || p[0] <= b.Max[0]
}
