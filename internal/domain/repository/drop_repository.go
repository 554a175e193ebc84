// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"zumap/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for drop persistence.
var (
	// ErrDropNotFound is returned when a drop is not found.
	ErrDropNotFound = errors.New("drop not found")
	// ErrDuplicateDrop is returned when trying to create a drop whose ID already exists.
	ErrDuplicateDrop = errors.New("drop already exists")
)

// DropRepository defines the interface for drop storage.
// Implementations skip malformed stored records when listing instead of failing.
type DropRepository interface {
	// CreateDrop persists a new drop. The ID must already be assigned.
	CreateDrop(ctx context.Context, drop *entity.Drop) error

	// FindDropByID retrieves a drop by its ID.
	FindDropByID(ctx context.Context, id string) (*entity.Drop, error)

	// ListDrops retrieves every well-formed drop ordered by creation time.
	ListDrops(ctx context.Context) ([]*entity.Drop, error)

	// DeleteAllDrops removes every drop and returns how many were removed.
	DeleteAllDrops(ctx context.Context) (int64, error)
}
