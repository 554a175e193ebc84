package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"zumap/config"
	"zumap/internal/domain/entity"
	"zumap/internal/domain/repository"
	"zumap/internal/domain/service"
	"zumap/internal/errors"
	"zumap/internal/usecase"
)

type dropFeed struct {
	dropRepo      repository.DropRepository
	probe         service.NetworkProbe
	metrics       service.Metrics
	logger        *slog.Logger
	pollInterval  time.Duration
	probeInterval time.Duration
	demoDrops     []entity.Drop
	now           func() time.Time

	// refreshMu serializes refreshes so snapshots are published in order.
	refreshMu sync.Mutex
	lastProbe time.Time

	mu          sync.RWMutex
	drops       []entity.Drop
	mode        usecase.FeedMode
	network     service.NetworkState
	refreshedAt time.Time
	subscribers map[int]func([]entity.Drop)
	nextSubID   int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewDropFeed creates a drop feed. probe may be nil, in which case the
// network state stays unknown and the feed never enters demo mode.
func NewDropFeed(
	dropRepo repository.DropRepository,
	probe service.NetworkProbe,
	metrics service.Metrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DropFeed {
	return &dropFeed{
		dropRepo:      dropRepo,
		probe:         probe,
		metrics:       metrics,
		logger:        logger.With("component", "drop_feed"),
		pollInterval:  cfg.Feed.PollInterval,
		probeInterval: cfg.Probe.Interval,
		demoDrops:     demoDropsFrom(cfg.Probe.DemoDrops, logger),
		now:           time.Now,
		mode:          usecase.FeedModeLive,
		network:       service.NetworkUnknown,
		subscribers:   make(map[int]func([]entity.Drop)),
	}
}

// demoDropsFrom converts configured demo drops, skipping unusable entries.
func demoDropsFrom(configured []config.DemoDropConfig, logger *slog.Logger) []entity.Drop {
	drops := make([]entity.Drop, 0, len(configured))
	for _, demo := range configured {
		drop := entity.Drop{
			ID:             demo.ID,
			Position:       entity.Coordinate{Lat: demo.Lat, Lng: demo.Lng},
			ContentType:    entity.ContentType(demo.Type),
			ContentRef:     demo.Content,
			Teaser:         demo.Teaser,
			RevealDistance: demo.RevealDistance,
		}
		if drop.ContentType == "" {
			drop.ContentType = entity.ContentTypeText
		}
		if drop.ID == "" || !drop.Position.InRange() {
			logger.Warn("skipping invalid demo drop", "id", demo.ID)

			continue
		}
		drops = append(drops, drop)
	}

	return drops
}

// Start loads the first snapshot and begins polling. A failing first load
// is logged; polling keeps retrying.
func (f *dropFeed) Start(ctx context.Context) error {
	if f.cancel != nil {
		return errors.New("drop feed already started")
	}

	if err := f.Refresh(ctx); err != nil {
		f.logger.Warn("initial drop feed refresh failed", "error", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.done = make(chan struct{})

	go f.poll(loopCtx)

	return nil
}

// Stop ends polling and waits for the loop to exit.
func (f *dropFeed) Stop(ctx context.Context) error {
	if f.cancel == nil {
		return nil
	}
	f.cancel()

	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "drop feed did not stop in time")
	}
}

func (f *dropFeed) poll(ctx context.Context) {
	defer close(f.done)

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Refresh(ctx); err != nil && ctx.Err() == nil {
				f.logger.Warn("drop feed refresh failed", "error", err)
			}
		}
	}
}

// Refresh reloads the snapshot. On a repository error the previous snapshot is kept.
func (f *dropFeed) Refresh(ctx context.Context) error {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	network := f.checkNetwork(ctx)

	var (
		drops []entity.Drop
		mode  usecase.FeedMode
	)
	if network == service.NetworkDisconnected && len(f.demoDrops) > 0 {
		drops = slices.Clone(f.demoDrops)
		mode = usecase.FeedModeDemo
	} else {
		stored, err := f.dropRepo.ListDrops(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list drops")
		}
		drops = make([]entity.Drop, 0, len(stored))
		for _, drop := range stored {
			if drop != nil {
				drops = append(drops, *drop)
			}
		}
		mode = usecase.FeedModeLive
	}

	f.mu.Lock()
	if mode != f.mode {
		f.logger.Info("drop feed mode changed", "from", f.mode, "to", mode)
	}
	f.drops = drops
	f.mode = mode
	f.network = network
	f.refreshedAt = f.now()
	subscribers := slices.Collect(maps.Values(f.subscribers))
	f.mu.Unlock()

	f.metrics.SetFeedSize(len(drops))

	for _, fn := range subscribers {
		fn(slices.Clone(drops))
	}

	return nil
}

// checkNetwork probes at most once per probe interval and otherwise
// returns the last observed state.
func (f *dropFeed) checkNetwork(ctx context.Context) service.NetworkState {
	if f.probe == nil {
		return service.NetworkUnknown
	}

	now := f.now()
	if !f.lastProbe.IsZero() && now.Sub(f.lastProbe) < f.probeInterval {
		f.mu.RLock()
		defer f.mu.RUnlock()

		return f.network
	}
	f.lastProbe = now

	return f.probe.Check(ctx)
}

func (f *dropFeed) Snapshot() []entity.Drop {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.drops)
}

func (f *dropFeed) Subscribe(fn func(drops []entity.Drop)) func() {
	f.mu.Lock()
	id := f.nextSubID
	f.nextSubID++
	f.subscribers[id] = fn
	f.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subscribers, id)
			f.mu.Unlock()
		})
	}
}

func (f *dropFeed) State() usecase.FeedState {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return usecase.FeedState{
		Mode:        f.mode,
		Network:     f.network,
		Drops:       len(f.drops),
		RefreshedAt: f.refreshedAt,
	}
}
