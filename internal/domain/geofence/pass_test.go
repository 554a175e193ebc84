package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zumap/internal/domain/entity"
)

func TestEvaluatePass_SkipsMalformedDrops(t *testing.T) {
	t.Parallel()

	drops := []entity.Drop{
		dropAt("ok-1", 1, 1),
		{Position: entity.Coordinate{Lat: 2, Lng: 2}},
		{ID: "no-coords", Position: entity.Coordinate{Lat: math.NaN(), Lng: 2}},
		dropAt("ok-2", 3, 3),
	}
	user := entity.Coordinate{Lat: 1, Lng: 1}

	markers := EvaluatePass(drops, &user)
	require.Len(t, markers, 2)
	assert.Equal(t, "ok-1", markers[0].Items[0].DropID)
	assert.True(t, markers[0].Items[0].InReach)
	assert.Equal(t, "ok-2", markers[1].Items[0].DropID)
	assert.False(t, markers[1].Items[0].InReach)
}

func TestEvaluatePass_DuplicateIDKeepsFirstRecord(t *testing.T) {
	t.Parallel()

	first := dropAt("dup", 5, 5)
	first.Teaser = "first"
	second := dropAt("dup", 1, 1)
	second.Teaser = "second"
	drops := []entity.Drop{first, dropAt("other", 1, 1), second}
	user := entity.Coordinate{Lat: 1, Lng: 1}

	markers := EvaluatePass(drops, &user)
	require.Len(t, markers, 2)
	assert.Equal(t, "dup", markers[0].Items[0].DropID)
	assert.Equal(t, "first", markers[0].Items[0].Teaser)
	assert.False(t, markers[0].Items[0].InReach)
	require.Len(t, markers[1].Items, 1)
	assert.Equal(t, "other", markers[1].Items[0].DropID)

	rec := &collectRecorder{}
	bindings := BindCollectHandlers(markers, rec.collect)
	assert.False(t, bindings.Bound("dup"))
	assert.True(t, bindings.Bound("other"))
	assert.Equal(t, 1, bindings.Len())
}

func TestEvaluatePass_Idempotent(t *testing.T) {
	t.Parallel()

	drops := []entity.Drop{dropAt("a", 1, 1), dropAt("b", 1, 1), dropAt("c", 5, 5)}
	user := entity.Coordinate{Lat: 1, Lng: 1}

	assert.Equal(t, EvaluatePass(drops, &user), EvaluatePass(drops, &user))
}

func TestEvaluatePass_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, EvaluatePass(nil, nil))
}

func TestCopyPosition(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CopyPosition(nil))

	orig := entity.Coordinate{Lat: 1, Lng: 2}
	c := CopyPosition(&orig)
	orig.Lat = 9
	assert.Equal(t, 1.0, c.Lat)
}
