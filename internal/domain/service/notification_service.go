package service

import (
	"context"

	"zumap/internal/domain/entity"
)

// DropAnnouncer broadcasts newly created drops to subscribed clients.
// Announcements carry only public data: position, type and teaser.
type DropAnnouncer interface {
	AnnounceDrop(ctx context.Context, drop *entity.Drop) error
}
