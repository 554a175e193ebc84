package main

import (
	"context"
	"log/slog"
	"os"

	"zumap/config"
	"zumap/internal/delivery"
	"zumap/internal/delivery/api"
	"zumap/internal/delivery/api/router/handler"
	"zumap/internal/domain/constants"
	"zumap/internal/domain/repository"
	"zumap/internal/domain/service"
	"zumap/internal/infra/blob"
	zfirebase "zumap/internal/infra/firebase"
	logs "zumap/internal/infra/log"
	"zumap/internal/infra/metrics"
	"zumap/internal/infra/notification"
	"zumap/internal/infra/persistence/rtdb"
	"zumap/internal/infra/persistence/sqlstore"
	"zumap/internal/infra/probe"
	"zumap/internal/infra/pubsub"
	"zumap/internal/infra/qrcode"
	"zumap/internal/usecase"
	"zumap/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectStore(cfg),
		injectService(cfg),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startFeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		newFirebaseApp,
		newMetrics,
	)
}

// injectStore selects where drop records live.
func injectStore(cfg *config.Config) fx.Option {
	if cfg.Store.Driver == constants.DropStoreFirebase {
		return fx.Provide(newRealtimeDropRepository)
	}

	return fx.Provide(
		sqlstore.New,
		sqlstore.NewDropRepository,
	)
}

func injectService(cfg *config.Config) fx.Option {
	announcer := fx.Provide(notification.NewNoopAnnouncer)
	if cfg.Firebase.AnnounceTopic != "" {
		announcer = fx.Provide(newFirebaseAnnouncer)
	}

	return fx.Options(
		announcer,
		fx.Provide(
			blob.New,
			pubsub.NewEventPublisher,
			newQRCodeService,
			newNetworkProbe,
		),
	)
}

func newFirebaseApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	return zfirebase.NewApp(ctx, cfg.Firebase)
}

func newRealtimeDropRepository(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (repository.DropRepository, error) {
	client, err := zfirebase.NewDatabase(ctx, app)
	if err != nil {
		return nil, err
	}

	return rtdb.NewDropRepository(client, cfg.Firebase.DropsPath, logger), nil
}

func newFirebaseAnnouncer(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (service.DropAnnouncer, error) {
	client, err := zfirebase.NewMessaging(ctx, app)
	if err != nil {
		return nil, err
	}

	return notification.NewFirebaseAnnouncer(client, cfg.Firebase.AnnounceTopic, logger), nil
}

// newMetrics returns a nil collector when metrics are disabled, which also
// keeps /metrics unregistered.
func newMetrics(cfg *config.Config) (*metrics.Collector, service.Metrics, error) {
	if !cfg.Metrics.Enabled {
		return nil, metrics.NewNoop(), nil
	}

	collector, err := metrics.NewCollector(metrics.NewRegistry(), cfg.Metrics.Namespace)
	if err != nil {
		return nil, nil, err
	}

	return collector, collector, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newNetworkProbe(cfg *config.Config, logger *slog.Logger) service.NetworkProbe {
	return probe.NewHTTPProbe(cfg.Probe.URL, cfg.Probe.Timeout, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDropFeed,
			impl.NewDropService,
			impl.NewMapService,
			impl.NewStatusService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDropHandler,
			handler.NewMapHandler,
			handler.NewSessionHandler,
			handler.NewContentHandler,
			handler.NewStatusHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startFeed loads the first drop snapshot before the servers accept requests.
func startFeed(lc fx.Lifecycle, feed usecase.DropFeed) {
	lc.Append(fx.Hook{
		OnStart: feed.Start,
		OnStop:  feed.Stop,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
