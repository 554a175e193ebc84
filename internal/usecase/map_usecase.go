package usecase

import (
	"context"
	"time"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/geofence"
)

// CollectResult describes the payload revealed by a successful collect.
type CollectResult struct {
	EventID     string
	DropID      string
	ContentType entity.ContentType
	// Text is set for text drops.
	Text string
	// ContentURL is set for file drops. Stored payloads are served under the
	// content route; legacy records carry an absolute URL.
	ContentURL     string
	DistanceMeters float64
	CollectedAt    time.Time
}

// MapUsecase evaluates drops against user positions, both stateless and
// through long-lived map sessions.
type MapUsecase interface {
	// Markers runs one evaluation pass over the feed. A nil position yields
	// markers without distances and no collect affordance.
	Markers(ctx context.Context, position *entity.Coordinate) ([]geofence.MarkerPresentation, error)

	// Collect reveals a drop if position is within its reveal distance
	Collect(ctx context.Context, dropID string, position *entity.Coordinate) (*CollectResult, error)

	// UpdateSessionPosition creates the session if needed, records the
	// position (nil for unknown) and returns the refreshed markers
	UpdateSessionPosition(ctx context.Context, sessionID string, position *entity.Coordinate) ([]geofence.MarkerPresentation, error)

	// SessionMarkers returns the markers of the session's latest pass
	SessionMarkers(ctx context.Context, sessionID string) ([]geofence.MarkerPresentation, error)

	// CollectInSession activates the collect handler bound in the session's latest pass
	CollectInSession(ctx context.Context, sessionID, dropID string) (*CollectResult, error)

	// EndSession discards a session
	EndSession(ctx context.Context, sessionID string) error
}
