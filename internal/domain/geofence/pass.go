package geofence

import "zumap/internal/domain/entity"

// EvaluatePass runs grouping, evaluation and presentation over a snapshot of
// drops for one user position. Malformed drops (no ID, or a position that is
// not a finite number) are skipped; the rest of the snapshot is unaffected.
// When an ID repeats, the first usable record wins and later ones are skipped.
func EvaluatePass(drops []entity.Drop, position *entity.Coordinate) []MarkerPresentation {
	usable := make([]entity.Drop, 0, len(drops))
	seen := make(map[string]struct{}, len(drops))
	for _, drop := range drops {
		if drop.ID == "" || !drop.Position.IsFinite() {
			continue
		}
		if _, dup := seen[drop.ID]; dup {
			continue
		}
		seen[drop.ID] = struct{}{}
		usable = append(usable, drop)
	}

	buckets := GroupByCoordinate(usable)
	markers := make([]MarkerPresentation, 0, len(buckets))
	for _, bucket := range buckets {
		markers = append(markers, BuildPresentation(bucket, position))
	}

	return markers
}

// CopyPosition detaches a caller-owned position so later mutation cannot leak
// into a pass.
func CopyPosition(position *entity.Coordinate) *entity.Coordinate {
	if position == nil {
		return nil
	}
	c := *position

	return &c
}
