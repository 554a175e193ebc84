package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/geofence"
	"zumap/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the part of *messaging.Client the announcer uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseAnnouncer struct {
	client messageSender
	topic  string
	logger *slog.Logger
}

// NewFirebaseAnnouncer creates an announcer publishing new drops to an FCM topic
func NewFirebaseAnnouncer(client messageSender, topic string, logger *slog.Logger) service.DropAnnouncer {
	return &firebaseAnnouncer{
		client: client,
		topic:  topic,
		logger: logger,
	}
}

// AnnounceDrop sends a topic message describing the drop's public data
func (a *firebaseAnnouncer) AnnounceDrop(ctx context.Context, drop *entity.Drop) error {
	message := buildDropMessage(a.topic, drop)

	messageID, err := a.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send drop announcement: %w", err)
	}

	a.logger.DebugContext(ctx, "Drop announced",
		slog.String("drop_id", drop.ID),
		slog.String("topic", a.topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// buildDropMessage never includes the drop content.
func buildDropMessage(topic string, drop *entity.Drop) *messaging.Message {
	teaser := drop.Teaser
	if teaser == "" {
		teaser = geofence.TeaserPlaceholder
	}

	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("%s New drop nearby", geofence.IconFor(drop.ContentType)),
			Body:  teaser,
		},
		Data: map[string]string{
			"drop_id":         drop.ID,
			"type":            string(drop.ContentType),
			"latitude":        strconv.FormatFloat(drop.Position.Lat, 'f', -1, 64),
			"longitude":       strconv.FormatFloat(drop.Position.Lng, 'f', -1, 64),
			"reveal_distance": strconv.FormatFloat(geofence.ResolveRevealDistance(*drop), 'f', -1, 64),
		},
	}
}

type noopAnnouncer struct{}

// NewNoopAnnouncer returns an announcer that does nothing, used when no topic is configured
func NewNoopAnnouncer() service.DropAnnouncer {
	return noopAnnouncer{}
}

func (noopAnnouncer) AnnounceDrop(context.Context, *entity.Drop) error {
	return nil
}
