package service

import (
	"context"
	"time"
)

// DropCollectedEvent is published every time a user collects a drop.
type DropCollectedEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`             // Unique per collect; the worker dedupes on it
	DropID         string    `json:"drop_id"`
	SessionID      string    `json:"session_id,omitempty"` // Empty for stateless collects
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	CollectedAt    time.Time `json:"collected_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDropCollected publishes a collect event for async recording
	PublishDropCollected(ctx context.Context, event *DropCollectedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
