package usecase

import (
	"context"
	"time"

	"zumap/internal/domain/service"
)

// StatusReport is what the status endpoint and the client banner show.
type StatusReport struct {
	Network     service.NetworkState `json:"network"`
	Mode        FeedMode             `json:"mode"`
	Drops       int                  `json:"drops"`
	RefreshedAt time.Time            `json:"refreshed_at"`
	Uptime      string               `json:"uptime"`
}

// StatusUsecase reports service health as seen by clients
type StatusUsecase interface {
	Status(ctx context.Context) (*StatusReport, error)
}
