package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"zumap/internal/domain/constants"
	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/geofence"
	"zumap/internal/domain/service"
	mockService "zumap/internal/mocks/service"
	mockUsecase "zumap/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapFixture struct {
	service   *mapService
	feed      *mockUsecase.MockDropFeed
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockMetrics
	clock     *fakeClock
}

func newMapFixture(t *testing.T, drops []entity.Drop) *mapFixture {
	t.Helper()

	feed := mockUsecase.NewMockDropFeed(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockMetrics(t)
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	feed.EXPECT().Snapshot().Return(drops).Maybe()
	metrics.EXPECT().ObservePass(mock.Anything, mock.Anything).Return().Maybe()

	svc := NewMapService(feed, publisher, metrics, testConfig(), testLogger()).(*mapService)
	svc.now = clock.Now

	return &mapFixture{service: svc, feed: feed, publisher: publisher, metrics: metrics, clock: clock}
}

func TestMapService_MarkersWithoutPosition(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{
		textDrop("a", zurich, "secret"),
		textDrop("b", zurich, "other"),
	})

	markers, err := f.service.Markers(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, markers, 1)

	marker := markers[0]
	assert.Equal(t, geofence.MarkerCluster, marker.Kind)
	for _, item := range marker.Items {
		assert.False(t, item.InReach)
		assert.Nil(t, item.Reachability)
		assert.Equal(t, geofence.AffordanceHint, item.Affordance)
	}
}

func TestMapService_MarkersRejectsInvalidPosition(t *testing.T) {
	f := newMapFixture(t, nil)

	_, err := f.service.Markers(context.Background(), &entity.Coordinate{Lat: 91, Lng: 0})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMapService_CollectText(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "the message")})
	ctx := context.Background()
	position := offsetNorth(zurich, 5)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeCollected).Return().Once()
	f.publisher.EXPECT().
		PublishDropCollected(mock.Anything, mock.MatchedBy(func(event *service.DropCollectedEvent) bool {
			return event.DropID == "a" && event.SessionID == "" && event.EventID != "" &&
				event.Latitude == position.Lat && event.Longitude == position.Lng
		})).
		Return(nil).Once()

	result, err := f.service.Collect(ctx, "a", &position)
	require.NoError(t, err)
	assert.Equal(t, "a", result.DropID)
	assert.Equal(t, "the message", result.Text)
	assert.Empty(t, result.ContentURL)
	assert.InDelta(t, 5, result.DistanceMeters, 0.5)
	assert.Equal(t, f.clock.Now(), result.CollectedAt)
	assert.NotEmpty(t, result.EventID)
}

func TestMapService_CollectFileDrops(t *testing.T) {
	stored := entity.Drop{ID: "img", Position: zurich, ContentType: entity.ContentTypeImage, ContentRef: "drops/abc.jpg"}
	legacy := entity.Drop{
		ID:          "pdf",
		Position:    offsetNorth(zurich, 1000),
		ContentType: entity.ContentTypePDF,
		ContentRef:  "https://storage.example.com/drops/1.pdf",
	}
	f := newMapFixture(t, []entity.Drop{stored, legacy})
	ctx := context.Background()

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeCollected).Return().Times(2)
	f.publisher.EXPECT().PublishDropCollected(mock.Anything, mock.Anything).Return(nil).Times(2)

	result, err := f.service.Collect(ctx, "img", &zurich)
	require.NoError(t, err)
	assert.Equal(t, constants.ContentPathPrefix+"drops/abc.jpg", result.ContentURL)
	assert.Empty(t, result.Text)

	at := legacy.Position
	result, err = f.service.Collect(ctx, "pdf", &at)
	require.NoError(t, err)
	assert.Equal(t, legacy.ContentRef, result.ContentURL)
}

func TestMapService_CollectOutOfReach(t *testing.T) {
	drop := textDrop("a", zurich, "secret")
	drop.RevealDistance = 50
	f := newMapFixture(t, []entity.Drop{drop})
	position := offsetNorth(zurich, 80)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeOutOfReach).Return().Once()

	result, err := f.service.Collect(context.Background(), "a", &position)
	assert.Nil(t, result)
	require.ErrorIs(t, err, domainerrors.ErrDropNotInReach)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Get closer to collect (within 50 meters)", appErr.Details())
}

func TestMapService_CollectWithoutPosition(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "secret")})

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeNoPosition).Return().Once()

	_, err := f.service.Collect(context.Background(), "a", nil)
	assert.ErrorIs(t, err, domainerrors.ErrPositionRequired)
}

func TestMapService_CollectUnknownDrop(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "secret")})

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeUnknownDrop).Return().Once()

	_, err := f.service.Collect(context.Background(), "missing", &zurich)
	assert.ErrorIs(t, err, domainerrors.ErrDropNotFound)
}

func TestMapService_CollectSucceedsWhenPublishFails(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "secret")})

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeCollected).Return().Once()
	f.publisher.EXPECT().PublishDropCollected(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	result, err := f.service.Collect(context.Background(), "a", &zurich)
	require.NoError(t, err)
	assert.Equal(t, "secret", result.Text)
}

func TestMapService_SessionLifecycle(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "secret")})
	ctx := context.Background()

	unsubscribed := 0
	f.feed.EXPECT().Subscribe(mock.Anything).Return(func() { unsubscribed++ }).Once()

	// Unknown position first: markers are drawn but nothing is collectable.
	markers, err := f.service.UpdateSessionPosition(ctx, "s1", nil)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.False(t, markers[0].Items[0].InReach)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeNoPosition).Return().Once()
	_, err = f.service.CollectInSession(ctx, "s1", "a")
	require.ErrorIs(t, err, domainerrors.ErrPositionRequired)

	// Walk into reach.
	near := offsetNorth(zurich, 3)
	markers, err = f.service.UpdateSessionPosition(ctx, "s1", &near)
	require.NoError(t, err)
	assert.True(t, markers[0].Items[0].InReach)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeCollected).Return().Once()
	f.publisher.EXPECT().
		PublishDropCollected(mock.Anything, mock.MatchedBy(func(event *service.DropCollectedEvent) bool {
			return event.SessionID == "s1" && event.DropID == "a"
		})).
		Return(nil).Once()

	result, err := f.service.CollectInSession(ctx, "s1", "a")
	require.NoError(t, err)
	assert.Equal(t, "secret", result.Text)

	// Walk away again: the handler is detached.
	far := offsetNorth(zurich, 200)
	_, err = f.service.UpdateSessionPosition(ctx, "s1", &far)
	require.NoError(t, err)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeOutOfReach).Return().Once()
	_, err = f.service.CollectInSession(ctx, "s1", "a")
	require.ErrorIs(t, err, domainerrors.ErrDropNotInReach)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeUnknownDrop).Return().Once()
	_, err = f.service.CollectInSession(ctx, "s1", "missing")
	require.ErrorIs(t, err, domainerrors.ErrDropNotFound)

	require.NoError(t, f.service.EndSession(ctx, "s1"))
	assert.Equal(t, 1, unsubscribed)

	_, err = f.service.SessionMarkers(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.ErrorIs(t, f.service.EndSession(ctx, "s1"), domainerrors.ErrSessionNotFound)
}

func TestMapService_SessionFollowsFeedUpdates(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "secret")})
	ctx := context.Background()

	var push func([]entity.Drop)
	f.feed.EXPECT().Subscribe(mock.Anything).
		RunAndReturn(func(fn func([]entity.Drop)) func() {
			push = fn

			return func() {}
		}).Once()

	_, err := f.service.UpdateSessionPosition(ctx, "s1", &zurich)
	require.NoError(t, err)
	require.NotNil(t, push)

	push([]entity.Drop{
		textDrop("a", zurich, "secret"),
		textDrop("b", offsetNorth(zurich, 500), "new"),
	})

	markers, err := f.service.SessionMarkers(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.True(t, markers[0].Items[0].InReach)
	assert.False(t, markers[1].Items[0].InReach)
}

func TestMapService_SessionSeesRefreshDuringCreation(t *testing.T) {
	feed := mockUsecase.NewMockDropFeed(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockMetrics(t)
	metrics.EXPECT().ObservePass(mock.Anything, mock.Anything).Return().Maybe()

	var push func([]entity.Drop)
	feed.EXPECT().Subscribe(mock.Anything).
		RunAndReturn(func(fn func([]entity.Drop)) func() {
			push = fn

			return func() {}
		}).Once()
	// The snapshot is read just before a refresh removes the drop; the refresh
	// reaches subscribers before the new session applies the stale read.
	feed.EXPECT().Snapshot().
		RunAndReturn(func() []entity.Drop {
			stale := []entity.Drop{textDrop("deleted", zurich, "gone")}
			require.NotNil(t, push, "session must subscribe before reading the snapshot")
			push(nil)

			return stale
		}).Once()

	svc := NewMapService(feed, publisher, metrics, testConfig(), testLogger())
	ctx := context.Background()

	markers, err := svc.UpdateSessionPosition(ctx, "s1", &zurich)
	require.NoError(t, err)
	assert.Empty(t, markers)

	metrics.EXPECT().CountCollect(service.CollectOutcomeUnknownDrop).Return().Once()
	result, err := svc.CollectInSession(ctx, "s1", "deleted")
	require.ErrorIs(t, err, domainerrors.ErrDropNotFound)
	assert.Nil(t, result)
}

func TestMapService_SessionCollectUsesPassPosition(t *testing.T) {
	f := newMapFixture(t, []entity.Drop{textDrop("a", zurich, "secret")})
	ctx := context.Background()
	f.feed.EXPECT().Subscribe(mock.Anything).Return(func() {}).Once()

	near := offsetNorth(zurich, 4)
	_, err := f.service.UpdateSessionPosition(ctx, "s1", &near)
	require.NoError(t, err)

	f.metrics.EXPECT().CountCollect(service.CollectOutcomeCollected).Return().Once()
	f.publisher.EXPECT().
		PublishDropCollected(mock.Anything, mock.MatchedBy(func(event *service.DropCollectedEvent) bool {
			return event.Latitude == near.Lat && event.Longitude == near.Lng
		})).
		Return(nil).Once()

	result, err := f.service.CollectInSession(ctx, "s1", "a")
	require.NoError(t, err)
	assert.InDelta(t, 4, result.DistanceMeters, 0.5)
}

func TestMapService_SessionsExpire(t *testing.T) {
	f := newMapFixture(t, nil)
	ctx := context.Background()

	unsubscribed := 0
	f.feed.EXPECT().Subscribe(mock.Anything).Return(func() { unsubscribed++ }).Times(2)

	_, err := f.service.UpdateSessionPosition(ctx, "idle", &zurich)
	require.NoError(t, err)

	f.clock.Advance(30 * time.Second)
	_, err = f.service.UpdateSessionPosition(ctx, "active", &zurich)
	require.NoError(t, err)

	f.clock.Advance(45 * time.Second)
	_, err = f.service.SessionMarkers(ctx, "idle")
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.Equal(t, 1, unsubscribed)

	_, err = f.service.SessionMarkers(ctx, "active")
	require.NoError(t, err)
}

func TestMapService_SessionValidation(t *testing.T) {
	f := newMapFixture(t, nil)
	ctx := context.Background()

	_, err := f.service.UpdateSessionPosition(ctx, "", &zurich)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	long := make([]byte, constants.MaxSessionIDLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = f.service.UpdateSessionPosition(ctx, string(long), &zurich)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.UpdateSessionPosition(ctx, "s1", &entity.Coordinate{Lat: 0, Lng: 200})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.CollectInSession(ctx, "unknown", "a")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
