package sqlstore

import (
	"context"

	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/repository"
	"zumap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the repository.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// RecordCollection persists a collection record.
func (repo *collectionRepository) RecordCollection(ctx context.Context, record *entity.CollectionRecord) error {
	recordM := &model.CollectionModel{
		ID:             record.ID,
		EventID:        record.EventID,
		DropID:         record.DropID,
		SessionID:      record.SessionID,
		DistanceMeters: record.DistanceMeters,
		CollectedAt:    record.CollectedAt,
		RecordedAt:     record.RecordedAt,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCollection
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record collection")
	}

	return nil
}

// FindCollectionByEventID retrieves the record written for an event.
func (repo *collectionRepository) FindCollectionByEventID(ctx context.Context, eventID string) (*entity.CollectionRecord, error) {
	var recordM model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("collection not found")
		}

		return nil, errors.Wrap(err, "failed to find collection by event ID")
	}

	return &entity.CollectionRecord{
		ID:             recordM.ID,
		EventID:        recordM.EventID,
		DropID:         recordM.DropID,
		SessionID:      recordM.SessionID,
		DistanceMeters: recordM.DistanceMeters,
		CollectedAt:    recordM.CollectedAt.UTC(),
		RecordedAt:     recordM.RecordedAt.UTC(),
	}, nil
}

// CountCollectionsByDrop returns how many times a drop has been collected.
func (repo *collectionRepository) CountCollectionsByDrop(ctx context.Context, dropID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("drop_id = ?", dropID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count collections")
	}

	return count, nil
}
