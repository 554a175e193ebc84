package sqlstore

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/repository"
	"zumap/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenSQLite("file:"+name+"?mode=memory&cache=shared", &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDropRepository_CreateFindList(t *testing.T) {
	db := newTestDB(t)
	repo := NewDropRepository(db, discardLogger())
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	second := &entity.Drop{
		ID: "b", Position: entity.Coordinate{Lat: 47.4, Lng: 8.5}, ContentType: entity.ContentTypePDF,
		ContentRef: "drops/abc.pdf", RevealDistance: 60, CreatedAt: base.Add(time.Minute),
	}
	first := &entity.Drop{
		ID: "a", Position: entity.Coordinate{Lat: 47.4, Lng: 8.5}, ContentType: entity.ContentTypeText,
		ContentRef: "hi", Teaser: "psst", CreatedAt: base,
	}
	require.NoError(t, repo.CreateDrop(ctx, second))
	require.NoError(t, repo.CreateDrop(ctx, first))

	got, err := repo.FindDropByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	drops, err := repo.ListDrops(ctx)
	require.NoError(t, err)
	require.Len(t, drops, 2)
	assert.Equal(t, "a", drops[0].ID)
	assert.Equal(t, "b", drops[1].ID)
	assert.Zero(t, drops[0].RevealDistance)
}

func TestDropRepository_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewDropRepository(db, discardLogger())
	ctx := context.Background()

	drop := &entity.Drop{ID: "dup", Position: entity.Coordinate{Lat: 1, Lng: 1}, ContentType: entity.ContentTypeText, ContentRef: "x", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateDrop(ctx, drop))
	assert.ErrorIs(t, repo.CreateDrop(ctx, drop), repository.ErrDuplicateDrop)
}

func TestDropRepository_NotFound(t *testing.T) {
	repo := NewDropRepository(newTestDB(t), discardLogger())

	_, err := repo.FindDropByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrDropNotFound)
}

func TestDropRepository_ListSkipsMalformedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewDropRepository(db, discardLogger())
	ctx := context.Background()

	require.NoError(t, db.Create(&model.DropModel{ID: "bad", Lat: 123, Lng: 8, ContentType: "text", ContentRef: "x", CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.DropModel{ID: "good", Lat: 12, Lng: 8, ContentType: "text", ContentRef: "x", CreatedAt: time.Now()}).Error)

	drops, err := repo.ListDrops(ctx)
	require.NoError(t, err)
	require.Len(t, drops, 1)
	assert.Equal(t, "good", drops[0].ID)

	_, err = repo.FindDropByID(ctx, "bad")
	assert.ErrorIs(t, err, repository.ErrDropNotFound)
}

func TestDropRepository_DeleteAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewDropRepository(db, discardLogger())
	ctx := context.Background()

	for _, id := range []string{"x", "y", "z"} {
		require.NoError(t, repo.CreateDrop(ctx, &entity.Drop{ID: id, Position: entity.Coordinate{Lat: 1, Lng: 1}, ContentType: entity.ContentTypeText, ContentRef: id, CreatedAt: time.Now()}))
	}

	n, err := repo.DeleteAllDrops(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	drops, err := repo.ListDrops(ctx)
	require.NoError(t, err)
	assert.Empty(t, drops)
}

func TestCollectionRepository_RecordIsIdempotentOnEventID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCollectionRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	record := &entity.CollectionRecord{
		ID: "c1", EventID: "e1", DropID: "d1", SessionID: "s1",
		DistanceMeters: 3.5, CollectedAt: now, RecordedAt: now.Add(time.Second),
	}
	require.NoError(t, repo.RecordCollection(ctx, record))

	again := *record
	again.ID = "c2"
	assert.ErrorIs(t, repo.RecordCollection(ctx, &again), repository.ErrDuplicateCollection)

	got, err := repo.FindCollectionByEventID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = repo.FindCollectionByEventID(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCollectionRepository_Count(t *testing.T) {
	db := newTestDB(t)
	repo := NewCollectionRepository(db)
	ctx := context.Background()

	for i, event := range []string{"e1", "e2", "e3"} {
		dropID := "d1"
		if i == 2 {
			dropID = "d2"
		}
		require.NoError(t, repo.RecordCollection(ctx, &entity.CollectionRecord{
			ID: "c-" + event, EventID: event, DropID: dropID, CollectedAt: time.Now(), RecordedAt: time.Now(),
		}))
	}

	n, err := repo.CountCollectionsByDrop(ctx, "d1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.CountCollectionsByDrop(ctx, "none")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(assertErr("UNIQUE constraint failed: drops.id")))
	assert.True(t, isUniqueConstraintViolation(assertErr(`duplicate key value violates unique constraint "drops_pkey"`)))
	assert.False(t, isUniqueConstraintViolation(assertErr("connection refused")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
