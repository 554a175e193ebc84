package impl

import (
	"io"
	"log/slog"
	"time"

	"zumap/config"
	"zumap/internal/domain/entity"
)

var zurich = entity.Coordinate{Lat: 47.3769, Lng: 8.5417}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Blob:     &config.BlobConfig{MaxUploadSize: "1KB"},
		Geofence: &config.GeofenceConfig{MaxRevealDistance: 1000, MaxNearbyRadius: 5000, SessionTTL: time.Minute},
		Feed:     &config.FeedConfig{PollInterval: time.Hour},
		Probe:    &config.ProbeConfig{Timeout: time.Second, Interval: time.Minute},
	}
}

// offsetNorth moves c north by roughly meters.
func offsetNorth(c entity.Coordinate, meters float64) entity.Coordinate {
	return entity.Coordinate{Lat: c.Lat + meters/111195, Lng: c.Lng}
}

func textDrop(id string, position entity.Coordinate, content string) entity.Drop {
	return entity.Drop{
		ID:          id,
		Position:    position,
		ContentType: entity.ContentTypeText,
		ContentRef:  content,
	}
}

// fakeClock is a settable time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
