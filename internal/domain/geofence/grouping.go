package geofence

import (
	"math"
	"strconv"

	"zumap/internal/domain/entity"
)

// CoordinateKey identifies a bucket. Two drops share a key only when both
// coordinates match bit for bit; there is no snapping tolerance.
type CoordinateKey struct {
	latBits uint64
	lngBits uint64
}

// KeyOf returns the bucket key for a coordinate.
func KeyOf(c entity.Coordinate) CoordinateKey {
	return CoordinateKey{
		latBits: keyBits(c.Lat),
		lngBits: keyBits(c.Lng),
	}
}

// keyBits folds negative zero into zero so equal coordinates share a key.
func keyBits(f float64) uint64 {
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}

// String renders the key as "lat,lng" using the shortest exact representation.
func (k CoordinateKey) String() string {
	lat := math.Float64frombits(k.latBits)
	lng := math.Float64frombits(k.lngBits)

	return strconv.FormatFloat(lat, 'g', -1, 64) + "," + strconv.FormatFloat(lng, 'g', -1, 64)
}

// Bucket is the set of drops sharing one exact coordinate.
type Bucket struct {
	Key      CoordinateKey
	Position entity.Coordinate
	Drops    []entity.Drop
}

// IsCluster reports whether the bucket holds more than one drop.
func (b Bucket) IsCluster() bool {
	return len(b.Drops) >= 2
}

// Buckets is an ordered grouping result. Keys appear in the order their first
// drop appeared in the input.
type Buckets []Bucket

// Lookup returns the bucket for key.
func (bs Buckets) Lookup(key CoordinateKey) (Bucket, bool) {
	for _, b := range bs {
		if b.Key == key {
			return b, true
		}
	}

	return Bucket{}, false
}

// GroupByCoordinate buckets drops by exact coordinate, preserving input order
// within each bucket.
func GroupByCoordinate(drops []entity.Drop) Buckets {
	if len(drops) == 0 {
		return Buckets{}
	}

	index := make(map[CoordinateKey]int, len(drops))
	buckets := make(Buckets, 0, len(drops))

	for _, drop := range drops {
		key := KeyOf(drop.Position)
		if i, ok := index[key]; ok {
			buckets[i].Drops = append(buckets[i].Drops, drop)

			continue
		}

		index[key] = len(buckets)
		buckets = append(buckets, Bucket{
			Key:      key,
			Position: drop.Position,
			Drops:    []entity.Drop{drop},
		})
	}

	return buckets
}
