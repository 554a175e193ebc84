// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/service"
	"zumap/internal/domain/spatial"
)

// CreateDropInput carries everything needed to author a drop.
type CreateDropInput struct {
	Latitude    float64
	Longitude   float64
	ContentType string
	// Text is the payload of a text drop.
	Text string
	// File is the payload of an image or pdf drop.
	File   []byte
	Teaser string
	// RevealDistance in meters; zero selects the default.
	RevealDistance float64
}

// DropUsecase defines the interface for authoring and reading drops
type DropUsecase interface {
	// CreateDrop validates the input, stores any file payload and writes the record
	CreateDrop(ctx context.Context, input *CreateDropInput) (*entity.Drop, error)

	// GetDrop retrieves a drop by ID
	GetDrop(ctx context.Context, id string) (*entity.Drop, error)

	// ListDrops returns the current drop feed snapshot
	ListDrops(ctx context.Context) ([]entity.Drop, error)

	// Nearby lists drops within radius meters of center, nearest first. A zero
	// radius selects the configured maximum.
	Nearby(ctx context.Context, center entity.Coordinate, radius float64) ([]spatial.NearbyDrop, error)

	// OpenContent streams a stored payload
	OpenContent(ctx context.Context, key string) (io.ReadCloser, *service.ContentInfo, error)

	// ResetDrops removes every drop and payload, returning the number of drops removed
	ResetDrops(ctx context.Context) (int64, error)

	// ShareQR renders a PNG share code for a drop
	ShareQR(ctx context.Context, id string) ([]byte, error)

	// ResolveQR resolves share code data back to its drop
	ResolveQR(ctx context.Context, data string) (*entity.Drop, error)
}
