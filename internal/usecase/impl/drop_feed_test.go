package impl

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"zumap/config"
	"zumap/internal/domain/entity"
	"zumap/internal/domain/service"
	mockRepo "zumap/internal/mocks/repository"
	mockService "zumap/internal/mocks/service"
	"zumap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T, probe service.NetworkProbe, cfg *config.Config) (*dropFeed, *mockRepo.MockDropRepository, *mockService.MockMetrics) {
	t.Helper()

	repo := mockRepo.NewMockDropRepository(t)
	metrics := mockService.NewMockMetrics(t)
	feed := NewDropFeed(repo, probe, metrics, cfg, testLogger()).(*dropFeed)

	return feed, repo, metrics
}

func TestDropFeed_RefreshLoadsSnapshot(t *testing.T) {
	feed, repo, metrics := newTestFeed(t, nil, testConfig())
	ctx := context.Background()

	a := textDrop("a", zurich, "hello")
	b := textDrop("b", offsetNorth(zurich, 50), "world")
	repo.EXPECT().ListDrops(ctx).Return([]*entity.Drop{&a, nil, &b}, nil)
	metrics.EXPECT().SetFeedSize(2).Return()

	var pushed [][]entity.Drop
	unsubscribe := feed.Subscribe(func(drops []entity.Drop) { pushed = append(pushed, drops) })
	defer unsubscribe()

	require.NoError(t, feed.Refresh(ctx))

	snapshot := feed.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "a", snapshot[0].ID)
	assert.Equal(t, "b", snapshot[1].ID)

	require.Len(t, pushed, 1)
	assert.Equal(t, snapshot, pushed[0])

	state := feed.State()
	assert.Equal(t, usecase.FeedModeLive, state.Mode)
	assert.Equal(t, service.NetworkUnknown, state.Network)
	assert.Equal(t, 2, state.Drops)
	assert.False(t, state.RefreshedAt.IsZero())
}

func TestDropFeed_SnapshotIsACopy(t *testing.T) {
	feed, repo, metrics := newTestFeed(t, nil, testConfig())
	ctx := context.Background()

	a := textDrop("a", zurich, "hello")
	repo.EXPECT().ListDrops(ctx).Return([]*entity.Drop{&a}, nil)
	metrics.EXPECT().SetFeedSize(1).Return()
	require.NoError(t, feed.Refresh(ctx))

	snapshot := feed.Snapshot()
	snapshot[0].ID = "mutated"
	assert.Equal(t, "a", feed.Snapshot()[0].ID)
}

func TestDropFeed_RefreshErrorKeepsPreviousSnapshot(t *testing.T) {
	feed, repo, metrics := newTestFeed(t, nil, testConfig())
	ctx := context.Background()

	a := textDrop("a", zurich, "hello")
	repo.EXPECT().ListDrops(ctx).Return([]*entity.Drop{&a}, nil).Once()
	repo.EXPECT().ListDrops(ctx).Return(nil, errors.New("connection reset")).Once()
	metrics.EXPECT().SetFeedSize(1).Return().Once()

	require.NoError(t, feed.Refresh(ctx))
	err := feed.Refresh(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list drops")

	require.Len(t, feed.Snapshot(), 1)
}

func TestDropFeed_DemoModeWhileDisconnected(t *testing.T) {
	cfg := testConfig()
	cfg.Probe.DemoDrops = []config.DemoDropConfig{
		{ID: "demo-1", Lat: 47.3769, Lng: 8.5417, Content: "demo text", Teaser: "Try me"},
		{ID: "demo-2", Lat: 47.3770, Lng: 8.5418, Type: "image", Content: "https://example.com/demo.jpg"},
		{ID: "", Lat: 1, Lng: 1},
		{ID: "broken", Lat: 95, Lng: 1},
	}

	probe := mockService.NewMockNetworkProbe(t)
	feed, repo, metrics := newTestFeed(t, probe, cfg)
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed.now = clock.Now
	ctx := context.Background()

	probe.EXPECT().Check(ctx).Return(service.NetworkDisconnected).Once()
	metrics.EXPECT().SetFeedSize(2).Return().Once()

	require.NoError(t, feed.Refresh(ctx))

	state := feed.State()
	assert.Equal(t, usecase.FeedModeDemo, state.Mode)
	assert.Equal(t, service.NetworkDisconnected, state.Network)

	snapshot := feed.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, entity.ContentTypeText, snapshot[0].ContentType)
	assert.Equal(t, entity.ContentTypeImage, snapshot[1].ContentType)

	// Back online after the probe interval.
	clock.Advance(2 * time.Minute)
	stored := textDrop("live", zurich, "real")
	probe.EXPECT().Check(ctx).Return(service.NetworkConnected).Once()
	repo.EXPECT().ListDrops(ctx).Return([]*entity.Drop{&stored}, nil).Once()
	metrics.EXPECT().SetFeedSize(1).Return().Once()

	require.NoError(t, feed.Refresh(ctx))
	assert.Equal(t, usecase.FeedModeLive, feed.State().Mode)
	assert.Equal(t, "live", feed.Snapshot()[0].ID)
}

func TestDropFeed_DisconnectedWithoutDemoDropsStaysLive(t *testing.T) {
	probe := mockService.NewMockNetworkProbe(t)
	feed, repo, metrics := newTestFeed(t, probe, testConfig())
	ctx := context.Background()

	probe.EXPECT().Check(ctx).Return(service.NetworkDisconnected).Once()
	repo.EXPECT().ListDrops(ctx).Return(nil, nil).Once()
	metrics.EXPECT().SetFeedSize(0).Return().Once()

	require.NoError(t, feed.Refresh(ctx))
	assert.Equal(t, usecase.FeedModeLive, feed.State().Mode)
	assert.Equal(t, service.NetworkDisconnected, feed.State().Network)
}

func TestDropFeed_ProbeRespectsInterval(t *testing.T) {
	probe := mockService.NewMockNetworkProbe(t)
	feed, repo, metrics := newTestFeed(t, probe, testConfig())
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed.now = clock.Now
	ctx := context.Background()

	probe.EXPECT().Check(ctx).Return(service.NetworkConnected).Once()
	repo.EXPECT().ListDrops(ctx).Return(nil, nil).Times(2)
	metrics.EXPECT().SetFeedSize(0).Return().Times(2)

	require.NoError(t, feed.Refresh(ctx))
	clock.Advance(10 * time.Second)
	require.NoError(t, feed.Refresh(ctx))

	assert.Equal(t, service.NetworkConnected, feed.State().Network)
}

func TestDropFeed_Unsubscribe(t *testing.T) {
	feed, repo, metrics := newTestFeed(t, nil, testConfig())
	ctx := context.Background()

	repo.EXPECT().ListDrops(ctx).Return(nil, nil)
	metrics.EXPECT().SetFeedSize(0).Return()

	calls := 0
	unsubscribe := feed.Subscribe(func([]entity.Drop) { calls++ })

	require.NoError(t, feed.Refresh(ctx))
	unsubscribe()
	unsubscribe()
	require.NoError(t, feed.Refresh(ctx))

	assert.Equal(t, 1, calls)
}

func TestDropFeed_StartAndStop(t *testing.T) {
	cfg := testConfig()
	cfg.Feed.PollInterval = 5 * time.Millisecond
	feed, repo, metrics := newTestFeed(t, nil, cfg)

	var loads atomic.Int32
	repo.EXPECT().ListDrops(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.Drop, error) {
		loads.Add(1)

		return nil, nil
	})
	metrics.EXPECT().SetFeedSize(0).Return()

	require.NoError(t, feed.Start(context.Background()))
	require.Error(t, feed.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return loads.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, feed.Stop(ctx))
}

func TestDropFeed_StartSurvivesFailingFirstLoad(t *testing.T) {
	feed, repo, _ := newTestFeed(t, nil, testConfig())

	repo.EXPECT().ListDrops(mock.Anything).Return(nil, errors.New("unavailable")).Once()

	require.NoError(t, feed.Start(context.Background()))
	assert.Empty(t, feed.Snapshot())
	require.NoError(t, feed.Stop(context.Background()))
}
