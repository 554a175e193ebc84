package rtdb

import (
	"encoding/json"
	"math"
	"time"

	"zumap/internal/domain/entity"
)

// dropRecord is the stored shape of a drop under the drops node.
// Field names match what existing map clients write.
type dropRecord struct {
	ID             string   `json:"id,omitempty"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Type           string   `json:"type"`
	URL            string   `json:"url"`
	Teaser         string   `json:"teaser,omitempty"`
	RevealDistance *float64 `json:"revealDistance,omitempty"`
	Timestamp      int64    `json:"timestamp"`
}

func toRecord(drop *entity.Drop) dropRecord {
	lat, lng := drop.Position.Lat, drop.Position.Lng
	rec := dropRecord{
		ID:        drop.ID,
		Lat:       &lat,
		Lng:       &lng,
		Type:      string(drop.ContentType),
		URL:       drop.ContentRef,
		Teaser:    drop.Teaser,
		Timestamp: drop.CreatedAt.UnixMilli(),
	}
	if drop.RevealDistance > 0 {
		r := drop.RevealDistance
		rec.RevealDistance = &r
	}

	return rec
}

// decodeDrop turns a raw child of the drops node into a drop. The second
// return is false for records the engine cannot place on a map.
func decodeDrop(key string, raw json.RawMessage) (*entity.Drop, bool) {
	var rec dropRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false
	}
	if rec.Lat == nil || rec.Lng == nil {
		return nil, false
	}

	pos := entity.Coordinate{Lat: *rec.Lat, Lng: *rec.Lng}
	if !pos.InRange() {
		return nil, false
	}

	id := key
	if id == "" {
		id = rec.ID
	}
	if id == "" {
		return nil, false
	}

	drop := &entity.Drop{
		ID:          id,
		Position:    pos,
		ContentType: entity.ContentType(rec.Type),
		ContentRef:  rec.URL,
		Teaser:      rec.Teaser,
		CreatedAt:   time.UnixMilli(rec.Timestamp).UTC(),
	}
	if rec.RevealDistance != nil && !math.IsNaN(*rec.RevealDistance) {
		drop.RevealDistance = *rec.RevealDistance
	}

	return drop, true
}
