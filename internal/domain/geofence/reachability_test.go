package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zumap/internal/domain/entity"
)

// metersNorth returns a coordinate offset from c by the given meters along its meridian.
func metersNorth(c entity.Coordinate, meters float64) entity.Coordinate {
	return entity.Coordinate{Lat: c.Lat + meters/EarthRadiusMeters*180/math.Pi, Lng: c.Lng}
}

func TestEvaluate_AbsentPosition(t *testing.T) {
	t.Parallel()

	drops := []entity.Drop{
		dropAt("a", 0, 0),
		{ID: "b", RevealDistance: 1e9},
		{ID: "c", Position: entity.Coordinate{Lat: math.NaN()}},
	}

	for _, drop := range drops {
		result, ok := Evaluate(drop, nil)
		assert.False(t, ok)
		assert.Equal(t, Reachability{}, result)
	}
}

func TestResolveRevealDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored float64
		want   float64
	}{
		{"legacy zero", 0, DefaultRevealDistance},
		{"negative", -5, DefaultRevealDistance},
		{"nan", math.NaN(), DefaultRevealDistance},
		{"infinite", math.Inf(1), DefaultRevealDistance},
		{"configured", 50, 50},
		{"fractional", 7.5, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ResolveRevealDistance(entity.Drop{RevealDistance: tt.stored}))
		})
	}
}

func TestEvaluate_LegacyDropBehavesLikeTwentyMeters(t *testing.T) {
	t.Parallel()

	origin := entity.Coordinate{Lat: 0, Lng: 0}
	legacy := entity.Drop{ID: "legacy", Position: origin}
	explicit := entity.Drop{ID: "explicit", Position: origin, RevealDistance: 20}

	user := metersNorth(origin, 20)
	d := DistanceMeters(user, origin)
	require.InDelta(t, 20, d, 1e-6)

	legacyResult, ok := Evaluate(legacy, &user)
	require.True(t, ok)
	explicitResult, _ := Evaluate(explicit, &user)
	assert.Equal(t, explicitResult, legacyResult)
	assert.Equal(t, DefaultRevealDistance, legacyResult.RevealDistance)

	inside := metersNorth(origin, 19.99)
	r, _ := Evaluate(legacy, &inside)
	assert.True(t, r.InReach)

	outside := metersNorth(origin, 20.01)
	r, _ = Evaluate(legacy, &outside)
	assert.False(t, r.InReach)
}

func TestEvaluate_BoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	dropPos := entity.Coordinate{Lat: 47.39339, Lng: 8.51631}
	user := entity.Coordinate{Lat: 47.39349, Lng: 8.51731}
	d := DistanceMeters(user, dropPos)

	atBoundary, ok := Evaluate(entity.Drop{ID: "x", Position: dropPos, RevealDistance: d}, &user)
	require.True(t, ok)
	assert.True(t, atBoundary.InReach)
	assert.Equal(t, d, atBoundary.DistanceMeters)

	justShort, _ := Evaluate(entity.Drop{ID: "x", Position: dropPos, RevealDistance: math.Nextafter(d, 0)}, &user)
	assert.False(t, justShort.InReach)
}

func TestEvaluate_NonFiniteDistanceIsNeverInReach(t *testing.T) {
	t.Parallel()

	user := entity.Coordinate{Lat: 1, Lng: 1}
	drop := entity.Drop{ID: "nan", Position: entity.Coordinate{Lat: math.NaN(), Lng: 1}, RevealDistance: 1e12}

	result, ok := Evaluate(drop, &user)
	require.True(t, ok)
	assert.True(t, math.IsNaN(result.DistanceMeters))
	assert.False(t, result.InReach)
}

func TestEvaluate_RecomputesOnEveryCall(t *testing.T) {
	t.Parallel()

	drop := entity.Drop{ID: "a", Position: entity.Coordinate{Lat: 10, Lng: 10}, RevealDistance: 30}
	pos := drop.Position

	first, _ := Evaluate(drop, &pos)
	assert.True(t, first.InReach)

	pos = metersNorth(drop.Position, 100)
	second, _ := Evaluate(drop, &pos)
	assert.False(t, second.InReach)
}
