package geofence

import (
	"context"
	"slices"
	"sync"

	"zumap/internal/domain/entity"
)

// Session keeps the latest drop snapshot and user position for one map view.
// Every update runs a full pass and swaps markers and bindings together, so a
// drop that leaves reach loses its handler in the same update.
type Session struct {
	mu        sync.RWMutex
	drops     []entity.Drop
	updated   bool
	position  *entity.Coordinate
	markers   []MarkerPresentation
	bindings  *Bindings
	onCollect CollectFunc
}

// NewSession creates a session with no drops and an unknown position.
func NewSession(onCollect CollectFunc) *Session {
	s := &Session{onCollect: onCollect}
	s.rebuild()

	return s
}

// UpdatePosition replaces the user position; nil means unknown.
func (s *Session) UpdatePosition(position *entity.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.position = CopyPosition(position)
	s.rebuild()
}

// UpdateDrops replaces the drop snapshot.
func (s *Session) UpdateDrops(drops []entity.Drop) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drops = slices.Clone(drops)
	s.updated = true
	s.rebuild()
}

// SeedDrops sets the initial drop snapshot unless UpdateDrops already ran.
// Subscribe to updates first, then seed, so no update between the two is lost
// and an older seed never overwrites a newer update.
func (s *Session) SeedDrops(drops []entity.Drop) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updated {
		return
	}
	s.drops = slices.Clone(drops)
	s.rebuild()
}

// Markers returns the markers of the latest pass.
func (s *Session) Markers() []MarkerPresentation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.markers)
}

// Position returns a copy of the current position, or nil when unknown.
func (s *Session) Position() *entity.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return CopyPosition(s.position)
}

// Collect activates the handler bound to dropID in the latest pass. The
// handler sees that pass's position through CollectPosition.
func (s *Session) Collect(ctx context.Context, dropID string) bool {
	s.mu.RLock()
	bindings := s.bindings
	position := CopyPosition(s.position)
	s.mu.RUnlock()

	if position != nil {
		ctx = WithCollectPosition(ctx, *position)
	}

	return bindings.Activate(ctx, dropID)
}

// Find returns the drop with id from the current snapshot.
func (s *Session) Find(id string) (entity.Drop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, drop := range s.drops {
		if drop.ID == id {
			return drop, true
		}
	}

	return entity.Drop{}, false
}

// rebuild must be called with mu held for writing.
func (s *Session) rebuild() {
	markers := EvaluatePass(s.drops, s.position)
	s.markers = markers
	s.bindings = BindCollectHandlers(markers, s.onCollect)
}
