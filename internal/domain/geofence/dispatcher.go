package geofence

import (
	"context"

	"zumap/internal/domain/entity"
)

// CollectFunc is invoked when the user collects an in-reach drop.
type CollectFunc func(ctx context.Context, drop entity.Drop)

type collectPositionKey struct{}

// WithCollectPosition attaches the user position a collect was evaluated at.
func WithCollectPosition(ctx context.Context, position entity.Coordinate) context.Context {
	return context.WithValue(ctx, collectPositionKey{}, position)
}

// CollectPosition returns the position attached by WithCollectPosition.
func CollectPosition(ctx context.Context) (entity.Coordinate, bool) {
	position, ok := ctx.Value(collectPositionKey{}).(entity.Coordinate)

	return position, ok
}

// Bindings maps drop IDs to collect handlers for one evaluation pass.
// Only in-reach items are bound.
type Bindings struct {
	handlers map[string]func(context.Context)
}

// BindCollectHandlers attaches onCollect to every in-reach item of markers.
// Out-of-reach items get no handler, so activating them is a no-op. Handlers
// are keyed by drop ID; EvaluatePass yields each ID once, and for markers built
// elsewhere the first in-reach item with an ID wins.
func BindCollectHandlers(markers []MarkerPresentation, onCollect CollectFunc) *Bindings {
	b := &Bindings{handlers: make(map[string]func(context.Context))}
	if onCollect == nil {
		return b
	}

	for _, marker := range markers {
		for _, item := range marker.Items {
			if !item.InReach || item.DropID == "" {
				continue
			}
			if _, bound := b.handlers[item.DropID]; bound {
				continue
			}
			drop := item.Drop()
			b.handlers[item.DropID] = func(ctx context.Context) {
				onCollect(ctx, drop)
			}
		}
	}

	return b
}

// Activate runs the handler bound to dropID once and reports whether one fired.
func (b *Bindings) Activate(ctx context.Context, dropID string) bool {
	if b == nil {
		return false
	}
	handler, ok := b.handlers[dropID]
	if !ok {
		return false
	}
	handler(ctx)

	return true
}

// Bound reports whether dropID currently has a collect handler.
func (b *Bindings) Bound(dropID string) bool {
	if b == nil {
		return false
	}
	_, ok := b.handlers[dropID]

	return ok
}

// Len returns the number of bound handlers.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}

	return len(b.handlers)
}
