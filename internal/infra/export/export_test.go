package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/geofence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteKML(t *testing.T) {
	drops := []entity.Drop{
		{
			ID:          "d1",
			Position:    entity.Coordinate{Lat: 47.3769, Lng: 8.5417},
			ContentType: entity.ContentTypeText,
			ContentRef:  "the secret message",
			Teaser:      "Look under the bench",
		},
		{
			ID:          "d2",
			Position:    entity.Coordinate{Lat: 47.3770, Lng: 8.5418},
			ContentType: entity.ContentTypeImage,
			ContentRef:  "drops/abc.jpg",
		},
		{ID: "bad", Position: entity.Coordinate{Lat: 120, Lng: 0}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, drops))

	out := buf.String()
	assert.Contains(t, out, "<kml")
	assert.Contains(t, out, DocumentName)
	assert.Contains(t, out, "Look under the bench")
	assert.Contains(t, out, geofence.TeaserPlaceholder)
	assert.Contains(t, out, "8.5417,47.3769")
	assert.Contains(t, out, "collect within 20 meters")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("<Placemark>")))

	assert.NotContains(t, out, "the secret message")
	assert.NotContains(t, out, "drops/abc.jpg")
}

func TestWriteKML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, nil))
	assert.Contains(t, buf.String(), "<Document>")
	assert.NotContains(t, buf.String(), "<Placemark>")
}

func TestMarkersGeoJSON(t *testing.T) {
	position := entity.Coordinate{Lat: 47.3769, Lng: 8.5417}
	drops := []entity.Drop{
		{ID: "a", Position: position, ContentType: entity.ContentTypeText, Teaser: "here"},
		{ID: "b", Position: position, ContentType: entity.ContentTypePDF},
		{ID: "c", Position: entity.Coordinate{Lat: 48, Lng: 9}, ContentType: entity.ContentTypeImage},
	}

	markers := geofence.EvaluatePass(drops, &position)
	fc := MarkersGeoJSON(markers)
	require.Len(t, fc.Features, 2)

	cluster := fc.Features[0]
	assert.Equal(t, "47.3769,8.5417", cluster.ID)
	assert.Equal(t, "cluster", cluster.Properties["kind"])
	assert.Equal(t, "2", cluster.Properties["badge"])

	items, ok := cluster.Properties["items"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0]["drop_id"])
	assert.Equal(t, true, items[0]["in_reach"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "FeatureCollection", decoded.Type)
	assert.Equal(t, "Point", decoded.Features[1].Geometry.Type)
	assert.Equal(t, []float64{9, 48}, decoded.Features[1].Geometry.Coordinates)
}
