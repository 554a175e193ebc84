package impl

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/repository"
	"zumap/internal/domain/service"
	mockRepo "zumap/internal/mocks/repository"
	mockService "zumap/internal/mocks/service"
	mockUsecase "zumap/internal/mocks/usecase"
	"zumap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dropFixture struct {
	service   *dropService
	repo      *mockRepo.MockDropRepository
	content   *mockService.MockContentStore
	feed      *mockUsecase.MockDropFeed
	announcer *mockService.MockDropAnnouncer
	qrcode    *mockService.MockQRCodeService
}

func newDropFixture(t *testing.T) *dropFixture {
	t.Helper()

	f := &dropFixture{
		repo:      mockRepo.NewMockDropRepository(t),
		content:   mockService.NewMockContentStore(t),
		feed:      mockUsecase.NewMockDropFeed(t),
		announcer: mockService.NewMockDropAnnouncer(t),
		qrcode:    mockService.NewMockQRCodeService(t),
	}
	f.service = NewDropService(f.repo, f.content, f.feed, f.announcer, f.qrcode, testConfig(), testLogger()).(*dropService)

	return f
}

func TestDropService_CreateTextDrop(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	var stored *entity.Drop
	f.repo.EXPECT().CreateDrop(ctx, mock.AnythingOfType("*entity.Drop")).
		Run(func(_ context.Context, drop *entity.Drop) { stored = drop }).
		Return(nil).Once()
	f.feed.EXPECT().Refresh(ctx).Return(nil).Once()
	f.announcer.EXPECT().AnnounceDrop(ctx, mock.AnythingOfType("*entity.Drop")).Return(nil).Once()

	drop, err := f.service.CreateDrop(ctx, &usecase.CreateDropInput{
		Latitude:    zurich.Lat,
		Longitude:   zurich.Lng,
		ContentType: "Text",
		Text:        "  meet me here  ",
		Teaser:      " A bench ",
	})
	require.NoError(t, err)
	require.Same(t, stored, drop)

	_, err = uuid.Parse(drop.ID)
	require.NoError(t, err)
	assert.Equal(t, zurich, drop.Position)
	assert.Equal(t, entity.ContentTypeText, drop.ContentType)
	assert.Equal(t, "meet me here", drop.ContentRef)
	assert.Equal(t, "A bench", drop.Teaser)
	assert.Equal(t, 20.0, drop.RevealDistance)
	assert.False(t, drop.CreatedAt.IsZero())
}

func TestDropService_CreateFileDrop(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()
	payload := []byte("%PDF-1.4 tiny")

	f.content.EXPECT().Put(ctx, payload, entity.ContentTypePDF).Return("drops/abc.pdf", nil).Once()
	f.repo.EXPECT().CreateDrop(ctx, mock.MatchedBy(func(drop *entity.Drop) bool {
		return drop.ContentRef == "drops/abc.pdf" && drop.RevealDistance == 75
	})).Return(nil).Once()
	f.feed.EXPECT().Refresh(ctx).Return(nil).Once()
	f.announcer.EXPECT().AnnounceDrop(ctx, mock.Anything).Return(nil).Once()

	drop, err := f.service.CreateDrop(ctx, &usecase.CreateDropInput{
		Latitude:       zurich.Lat,
		Longitude:      zurich.Lng,
		ContentType:    "pdf",
		File:           payload,
		RevealDistance: 75,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ContentTypePDF, drop.ContentType)
}

func TestDropService_CreateDropValidation(t *testing.T) {
	valid := func() *usecase.CreateDropInput {
		return &usecase.CreateDropInput{Latitude: zurich.Lat, Longitude: zurich.Lng, ContentType: "text", Text: "hi"}
	}

	tests := []struct {
		name   string
		mutate func(in *usecase.CreateDropInput)
		want   error
	}{
		{"latitude out of range", func(in *usecase.CreateDropInput) { in.Latitude = 90.5 }, domainerrors.ErrValidationFailed},
		{"longitude not a number", func(in *usecase.CreateDropInput) { in.Longitude = math.NaN() }, domainerrors.ErrValidationFailed},
		{"unknown type", func(in *usecase.CreateDropInput) { in.ContentType = "video" }, domainerrors.ErrValidationFailed},
		{"blank text", func(in *usecase.CreateDropInput) { in.Text = "   " }, domainerrors.ErrValidationFailed},
		{"image without file", func(in *usecase.CreateDropInput) { in.ContentType = "image" }, domainerrors.ErrValidationFailed},
		{"file too large", func(in *usecase.CreateDropInput) {
			in.ContentType = "image"
			in.File = make([]byte, 2048)
		}, domainerrors.ErrContentTooLarge},
		{"teaser too long", func(in *usecase.CreateDropInput) { in.Teaser = strings.Repeat("é", 141) }, domainerrors.ErrValidationFailed},
		{"negative reveal distance", func(in *usecase.CreateDropInput) { in.RevealDistance = -1 }, domainerrors.ErrValidationFailed},
		{"reveal distance above max", func(in *usecase.CreateDropInput) { in.RevealDistance = 1000.5 }, domainerrors.ErrValidationFailed},
		{"reveal distance infinite", func(in *usecase.CreateDropInput) { in.RevealDistance = math.Inf(1) }, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDropFixture(t)
			in := valid()
			tt.mutate(in)

			drop, err := f.service.CreateDrop(context.Background(), in)
			assert.Nil(t, drop)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("nil input", func(t *testing.T) {
		f := newDropFixture(t)
		_, err := f.service.CreateDrop(context.Background(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDropService_CreateDropUploadFailure(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.content.EXPECT().Put(ctx, mock.Anything, entity.ContentTypeImage).Return("", errors.New("bucket offline")).Once()

	_, err := f.service.CreateDrop(ctx, &usecase.CreateDropInput{
		Latitude: zurich.Lat, Longitude: zurich.Lng, ContentType: "image", File: []byte{0xff, 0xd8},
	})
	assert.ErrorIs(t, err, domainerrors.ErrContentUploadFailed)
}

func TestDropService_CreateDropStoreFailure(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().CreateDrop(ctx, mock.Anything).Return(errors.New("write denied")).Once()

	_, err := f.service.CreateDrop(ctx, &usecase.CreateDropInput{
		Latitude: zurich.Lat, Longitude: zurich.Lng, ContentType: "text", Text: "hi",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDropCreationFailed)
}

func TestDropService_CreateDropSideEffectFailuresAreNotFatal(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().CreateDrop(ctx, mock.Anything).Return(nil).Once()
	f.feed.EXPECT().Refresh(ctx).Return(errors.New("list failed")).Once()
	f.announcer.EXPECT().AnnounceDrop(ctx, mock.Anything).Return(errors.New("fcm unavailable")).Once()

	drop, err := f.service.CreateDrop(ctx, &usecase.CreateDropInput{
		Latitude: zurich.Lat, Longitude: zurich.Lng, ContentType: "text", Text: "hi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, drop.ID)
}

func TestDropService_GetDrop(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	inFeed := textDrop("feed", zurich, "x")
	f.feed.EXPECT().Snapshot().Return([]entity.Drop{inFeed})

	drop, err := f.service.GetDrop(ctx, "feed")
	require.NoError(t, err)
	assert.Equal(t, "feed", drop.ID)

	stored := textDrop("stored", zurich, "y")
	f.repo.EXPECT().FindDropByID(ctx, "stored").Return(&stored, nil).Once()
	drop, err = f.service.GetDrop(ctx, "stored")
	require.NoError(t, err)
	assert.Equal(t, "stored", drop.ID)

	f.repo.EXPECT().FindDropByID(ctx, "missing").Return(nil, repository.ErrDropNotFound).Once()
	_, err = f.service.GetDrop(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrDropNotFound)

	f.repo.EXPECT().FindDropByID(ctx, "broken").Return(nil, errors.New("timeout")).Once()
	_, err = f.service.GetDrop(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrDropNotFound)

	_, err = f.service.GetDrop(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrDropNotFound)
}

func TestDropService_ListDrops(t *testing.T) {
	f := newDropFixture(t)
	drops := []entity.Drop{textDrop("a", zurich, "x")}
	f.feed.EXPECT().Snapshot().Return(drops).Once()

	got, err := f.service.ListDrops(context.Background())
	require.NoError(t, err)
	assert.Equal(t, drops, got)
}

func TestDropService_Nearby(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.feed.EXPECT().Snapshot().Return([]entity.Drop{
		textDrop("near", offsetNorth(zurich, 100), "x"),
		textDrop("far", offsetNorth(zurich, 4000), "y"),
		textDrop("outside", offsetNorth(zurich, 9000), "z"),
	})

	got, err := f.service.Nearby(ctx, zurich, 500)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].Drop.ID)

	got, err = f.service.Nearby(ctx, zurich, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = f.service.Nearby(ctx, zurich, 5001)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.Nearby(ctx, entity.Coordinate{Lat: -91}, 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDropService_OpenContent(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	_, _, err := f.service.OpenContent(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)

	body := io.NopCloser(strings.NewReader("jpeg bytes"))
	info := &service.ContentInfo{Key: "drops/a.jpg", ContentType: "image/jpeg", Size: 10}
	f.content.EXPECT().Open(ctx, "drops/a.jpg").Return(body, info, nil).Once()

	rc, gotInfo, err := f.service.OpenContent(ctx, "drops/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, info, gotInfo)
	assert.NoError(t, rc.Close())
}

func TestDropService_ResetDrops(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().DeleteAllDrops(ctx).Return(int64(3), nil).Once()
	f.content.EXPECT().DeleteAll(ctx).Return(nil).Once()
	f.feed.EXPECT().Refresh(ctx).Return(nil).Once()

	removed, err := f.service.ResetDrops(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestDropService_ResetDropsStoreFailure(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().DeleteAllDrops(ctx).Return(int64(0), errors.New("denied")).Once()

	_, err := f.service.ResetDrops(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete drops")
}

func TestDropService_ShareAndResolveQR(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.feed.EXPECT().Snapshot().Return([]entity.Drop{textDrop("a", zurich, "x")})
	f.qrcode.EXPECT().GenerateDropQR("a").Return([]byte("png"), nil).Once()

	png, err := f.service.ShareQR(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	f.qrcode.EXPECT().ParseDropQR(`{"drop_id":"a","type":"drop"}`).Return("a", nil).Once()
	drop, err := f.service.ResolveQR(ctx, `{"drop_id":"a","type":"drop"}`)
	require.NoError(t, err)
	assert.Equal(t, "a", drop.ID)

	f.qrcode.EXPECT().ParseDropQR("garbage").Return("", errors.New("invalid QR code format")).Once()
	_, err = f.service.ResolveQR(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidShareCode)
}

func TestDropService_ShareQRUnknownDrop(t *testing.T) {
	f := newDropFixture(t)
	ctx := context.Background()

	f.feed.EXPECT().Snapshot().Return(nil)
	f.repo.EXPECT().FindDropByID(ctx, "missing").Return(nil, repository.ErrDropNotFound).Once()

	_, err := f.service.ShareQR(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrDropNotFound)
}
