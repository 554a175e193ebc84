package export

import (
	"zumap/internal/domain/geofence"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// MarkersGeoJSON converts evaluated markers into a feature collection. Each
// marker becomes a point feature whose properties mirror the marker fields.
func MarkersGeoJSON(markers []geofence.MarkerPresentation) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, marker := range markers {
		feature := geojson.NewFeature(orb.Point{marker.Position.Lng, marker.Position.Lat})
		feature.ID = marker.Key
		feature.Properties["kind"] = string(marker.Kind)
		feature.Properties["icon"] = string(marker.Icon)
		if marker.Badge != "" {
			feature.Properties["badge"] = marker.Badge
		}
		feature.Properties["items"] = itemProperties(marker.Items)
		fc.Append(feature)
	}

	return fc
}

func itemProperties(items []geofence.MarkerItem) []map[string]any {
	props := make([]map[string]any, 0, len(items))
	for _, item := range items {
		p := map[string]any{
			"drop_id":      item.DropID,
			"content_type": string(item.ContentType),
			"teaser":       item.Teaser,
			"in_reach":     item.InReach,
			"affordance":   string(item.Affordance),
			"opacity":      item.Opacity,
		}
		if item.DistanceLabel != "" {
			p["distance"] = item.DistanceLabel
		}
		if item.Hint != "" {
			p["hint"] = item.Hint
		}
		props = append(props, p)
	}

	return props
}
