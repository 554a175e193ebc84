package repository

import (
	"context"

	"zumap/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateCollection is returned when a collect event was already recorded.
var ErrDuplicateCollection = errors.New("collection already recorded")

// CollectionRepository stores collection records written by the collector worker.
type CollectionRepository interface {
	// RecordCollection persists a record. Recording the same EventID twice
	// returns ErrDuplicateCollection.
	RecordCollection(ctx context.Context, record *entity.CollectionRecord) error

	// FindCollectionByEventID retrieves the record written for an event.
	FindCollectionByEventID(ctx context.Context, eventID string) (*entity.CollectionRecord, error)

	// CountCollectionsByDrop returns how many times a drop has been collected.
	CountCollectionsByDrop(ctx context.Context, dropID string) (int64, error)
}
