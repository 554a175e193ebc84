// Package export renders drops and markers into interchange formats (KML, GeoJSON).
// Exports only carry public fields; drop content never leaves through here.
package export

import (
	"fmt"
	"io"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/geofence"

	"github.com/pkg/errors"
	"github.com/twpayne/go-kml"
)

// DocumentName is the name of the exported KML document.
const DocumentName = "zumap drops"

// WriteKML writes one placemark per drop. Drops without an ID or a usable
// position are skipped.
func WriteKML(w io.Writer, drops []entity.Drop) error {
	placemarks := make([]kml.Element, 0, len(drops)+1)
	placemarks = append(placemarks, kml.Name(DocumentName))

	for _, drop := range drops {
		if drop.ID == "" || !drop.Position.InRange() {
			continue
		}
		placemarks = append(placemarks, dropPlacemark(drop))
	}

	doc := kml.KML(kml.Document(placemarks...))
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return errors.Wrap(err, "failed to write kml")
	}

	return nil
}

func dropPlacemark(drop entity.Drop) kml.Element {
	teaser := drop.Teaser
	if teaser == "" {
		teaser = geofence.TeaserPlaceholder
	}

	description := fmt.Sprintf("%s %s drop, collect within %s",
		geofence.IconFor(drop.ContentType),
		drop.ContentType,
		geofence.FormatThreshold(geofence.ResolveRevealDistance(drop)),
	)

	return kml.Placemark(
		kml.Name(teaser),
		kml.Description(description),
		kml.Point(
			kml.Coordinates(kml.Coordinate{Lon: drop.Position.Lng, Lat: drop.Position.Lat}),
		),
	)
}
