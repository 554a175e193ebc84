package sqlstore

import (
	"context"
	"log/slog"

	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/repository"
	"zumap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dropRepository implements the repository.DropRepository interface.
type dropRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewDropRepository is the constructor for dropRepository.
func NewDropRepository(db *gorm.DB, logger *slog.Logger) repository.DropRepository {
	return &dropRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDrop persists a new drop.
func (repo *dropRepository) CreateDrop(ctx context.Context, drop *entity.Drop) error {
	dropM := fromDropDomain(drop)

	if err := repo.db.WithContext(ctx).Create(dropM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDrop
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDropCreationFailed.WrapMessage("missing required drop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create drop")
	}

	return nil
}

// FindDropByID retrieves a drop by its ID.
func (repo *dropRepository) FindDropByID(ctx context.Context, id string) (*entity.Drop, error) {
	var dropM model.DropModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop by ID")
	}

	drop, ok := toDropDomain(&dropM)
	if !ok {
		repo.logger.WarnContext(ctx, "Skipping malformed drop row", slog.String("drop_id", id))

		return nil, repository.ErrDropNotFound
	}

	return drop, nil
}

// ListDrops retrieves every well-formed drop, oldest first.
func (repo *dropRepository) ListDrops(ctx context.Context) ([]*entity.Drop, error) {
	var dropModels []*model.DropModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&dropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list drops")
	}

	drops := make([]*entity.Drop, 0, len(dropModels))
	for _, dropM := range dropModels {
		drop, ok := toDropDomain(dropM)
		if !ok {
			repo.logger.WarnContext(ctx, "Skipping malformed drop row", slog.String("drop_id", dropM.ID))

			continue
		}
		drops = append(drops, drop)
	}

	return drops, nil
}

// DeleteAllDrops removes every drop.
func (repo *dropRepository) DeleteAllDrops(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.DropModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete drops")
	}

	return result.RowsAffected, nil
}

func fromDropDomain(drop *entity.Drop) *model.DropModel {
	return &model.DropModel{
		ID:             drop.ID,
		Lat:            drop.Position.Lat,
		Lng:            drop.Position.Lng,
		ContentType:    string(drop.ContentType),
		ContentRef:     drop.ContentRef,
		Teaser:         drop.Teaser,
		RevealDistance: drop.RevealDistance,
		CreatedAt:      drop.CreatedAt,
	}
}

func toDropDomain(dropM *model.DropModel) (*entity.Drop, bool) {
	pos := entity.Coordinate{Lat: dropM.Lat, Lng: dropM.Lng}
	if dropM.ID == "" || !pos.InRange() {
		return nil, false
	}

	return &entity.Drop{
		ID:             dropM.ID,
		Position:       pos,
		ContentType:    entity.ContentType(dropM.ContentType),
		ContentRef:     dropM.ContentRef,
		Teaser:         dropM.Teaser,
		RevealDistance: dropM.RevealDistance,
		CreatedAt:      dropM.CreatedAt.UTC(),
	}, true
}
