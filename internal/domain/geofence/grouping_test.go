package geofence

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zumap/internal/domain/entity"
)

func dropAt(id string, lat, lng float64) entity.Drop {
	return entity.Drop{
		ID:          id,
		Position:    entity.Coordinate{Lat: lat, Lng: lng},
		ContentType: entity.ContentTypeText,
		ContentRef:  "hello " + id,
	}
}

func TestGroupByCoordinate_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupByCoordinate(nil))
	assert.NotNil(t, GroupByCoordinate(nil))
	assert.Empty(t, GroupByCoordinate([]entity.Drop{}))
}

func TestGroupByCoordinate_DistinctCoordinatesAreSingletons(t *testing.T) {
	t.Parallel()

	drops := make([]entity.Drop, 0, 5)
	for i := range 5 {
		drops = append(drops, dropAt(strconv.Itoa(i), 47.0+float64(i)*0.001, 8.5))
	}

	buckets := GroupByCoordinate(drops)
	require.Len(t, buckets, 5)
	for i, b := range buckets {
		assert.False(t, b.IsCluster())
		require.Len(t, b.Drops, 1)
		assert.Equal(t, strconv.Itoa(i), b.Drops[0].ID)
	}
}

func TestGroupByCoordinate_IdenticalCoordinatesFormOneBucket(t *testing.T) {
	t.Parallel()

	drops := []entity.Drop{
		dropAt("a", 47.4, 8.5),
		dropAt("b", 47.4, 8.5),
		dropAt("c", 47.4, 8.5),
		dropAt("d", 47.4, 8.5),
	}

	buckets := GroupByCoordinate(drops)
	require.Len(t, buckets, 1)
	assert.True(t, buckets[0].IsCluster())
	assert.Equal(t, drops, buckets[0].Drops)
	assert.Equal(t, "47.4,8.5", buckets[0].Key.String())
}

func TestGroupByCoordinate_OrderAndExactMatch(t *testing.T) {
	t.Parallel()

	drops := []entity.Drop{
		dropAt("first", 1, 1),
		dropAt("second", 2, 2),
		dropAt("third", 1, 1),
		dropAt("jitter", 1.0000001, 1),
		dropAt("fourth", 2, 2),
	}

	buckets := GroupByCoordinate(drops)
	require.Len(t, buckets, 3)

	assert.Equal(t, []string{"first", "third"}, ids(buckets[0].Drops))
	assert.Equal(t, []string{"second", "fourth"}, ids(buckets[1].Drops))
	assert.Equal(t, []string{"jitter"}, ids(buckets[2].Drops))

	b, ok := buckets.Lookup(KeyOf(entity.Coordinate{Lat: 2, Lng: 2}))
	require.True(t, ok)
	assert.Equal(t, []string{"second", "fourth"}, ids(b.Drops))

	_, ok = buckets.Lookup(KeyOf(entity.Coordinate{Lat: 3, Lng: 3}))
	assert.False(t, ok)
}

func TestKeyOf_NegativeZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KeyOf(entity.Coordinate{Lat: 0, Lng: 0}), KeyOf(entity.Coordinate{Lat: math.Copysign(0, -1), Lng: 0}))
}

func ids(drops []entity.Drop) []string {
	out := make([]string, 0, len(drops))
	for _, d := range drops {
		out = append(out, d.ID)
	}

	return out
}
