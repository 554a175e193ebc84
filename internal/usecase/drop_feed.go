package usecase

import (
	"context"
	"time"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/service"
)

// FeedMode tells whether the feed serves stored or demo drops.
type FeedMode string

const (
	FeedModeLive FeedMode = "live"
	FeedModeDemo FeedMode = "demo"
)

// DropFeed keeps the latest drop snapshot and pushes updates to subscribers.
type DropFeed interface {
	// Start loads the first snapshot and begins polling
	Start(ctx context.Context) error

	// Stop ends polling
	Stop(ctx context.Context) error

	// Refresh reloads the snapshot immediately
	Refresh(ctx context.Context) error

	// Snapshot returns a copy of the current drops
	Snapshot() []entity.Drop

	// Subscribe registers fn to receive every new snapshot. The returned
	// function unregisters it.
	Subscribe(fn func(drops []entity.Drop)) (unsubscribe func())

	// State reports the feed mode, network state and last refresh time
	State() FeedState
}

// FeedState is a point-in-time view of the feed.
type FeedState struct {
	Mode        FeedMode
	Network     service.NetworkState
	Drops       int
	RefreshedAt time.Time
}
