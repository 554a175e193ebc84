package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"zumap/config"
	deliverycontext "zumap/internal/delivery/context"
	"zumap/internal/domain/constants"
	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/geofence"
	"zumap/internal/domain/service"
	"zumap/internal/usecase"

	"github.com/google/uuid"
)

type collectSinkKey struct{}

// collectSink receives the result of a collect handler fired during one request.
type collectSink struct {
	sessionID string
	result    *usecase.CollectResult
}

type mapSession struct {
	session     *geofence.Session
	unsubscribe func()
	lastSeen    time.Time
}

type mapService struct {
	feed       usecase.DropFeed
	publisher  service.EventPublisher
	metrics    service.Metrics
	logger     *slog.Logger
	sessionTTL time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*mapSession
}

// NewMapService creates the map use case over a drop feed
func NewMapService(
	feed usecase.DropFeed,
	publisher service.EventPublisher,
	metrics service.Metrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MapUsecase {
	return &mapService{
		feed:       feed,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
		sessionTTL: cfg.Geofence.SessionTTL,
		now:        time.Now,
		sessions:   make(map[string]*mapSession),
	}
}

func (s *mapService) Markers(ctx context.Context, position *entity.Coordinate) ([]geofence.MarkerPresentation, error) {
	if err := validatePosition(position); err != nil {
		return nil, err
	}

	start := time.Now()
	markers := geofence.EvaluatePass(s.feed.Snapshot(), position)
	s.metrics.ObservePass(time.Since(start), len(markers))

	return markers, nil
}

func (s *mapService) Collect(ctx context.Context, dropID string, position *entity.Coordinate) (*usecase.CollectResult, error) {
	if position == nil {
		s.metrics.CountCollect(service.CollectOutcomeNoPosition)

		return nil, domainerrors.ErrPositionRequired
	}
	if err := validatePosition(position); err != nil {
		return nil, err
	}

	drop, found := findDrop(s.feed.Snapshot(), dropID)
	if !found {
		s.metrics.CountCollect(service.CollectOutcomeUnknownDrop)

		return nil, domainerrors.ErrDropNotFound
	}

	markers := geofence.EvaluatePass([]entity.Drop{drop}, position)
	bindings := geofence.BindCollectHandlers(markers, s.onCollect)

	sink := &collectSink{}
	collectCtx := geofence.WithCollectPosition(context.WithValue(ctx, collectSinkKey{}, sink), *position)
	if !bindings.Activate(collectCtx, dropID) {
		s.metrics.CountCollect(service.CollectOutcomeOutOfReach)

		return nil, notInReach(markers, dropID)
	}

	return sink.result, nil
}

func (s *mapService) UpdateSessionPosition(
	ctx context.Context,
	sessionID string,
	position *entity.Coordinate,
) ([]geofence.MarkerPresentation, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validatePosition(position); err != nil {
		return nil, err
	}

	entry := s.sessionOrCreate(ctx, sessionID)

	start := time.Now()
	entry.session.UpdatePosition(position)
	markers := entry.session.Markers()
	s.metrics.ObservePass(time.Since(start), len(markers))

	return markers, nil
}

func (s *mapService) SessionMarkers(ctx context.Context, sessionID string) ([]geofence.MarkerPresentation, error) {
	entry, err := s.lookupSession(sessionID)
	if err != nil {
		return nil, err
	}

	return entry.session.Markers(), nil
}

func (s *mapService) CollectInSession(ctx context.Context, sessionID, dropID string) (*usecase.CollectResult, error) {
	entry, err := s.lookupSession(sessionID)
	if err != nil {
		return nil, err
	}

	sink := &collectSink{sessionID: sessionID}
	if entry.session.Collect(context.WithValue(ctx, collectSinkKey{}, sink), dropID) {
		return sink.result, nil
	}

	if _, found := entry.session.Find(dropID); !found {
		s.metrics.CountCollect(service.CollectOutcomeUnknownDrop)

		return nil, domainerrors.ErrDropNotFound
	}
	if entry.session.Position() == nil {
		s.metrics.CountCollect(service.CollectOutcomeNoPosition)

		return nil, domainerrors.ErrPositionRequired
	}
	s.metrics.CountCollect(service.CollectOutcomeOutOfReach)

	return nil, notInReach(entry.session.Markers(), dropID)
}

func (s *mapService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	entry.unsubscribe()

	return nil
}

// onCollect is the collect handler bound to in-reach drops. It fills the
// request's sink and publishes the collect event.
func (s *mapService) onCollect(ctx context.Context, drop entity.Drop) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	sink, ok := ctx.Value(collectSinkKey{}).(*collectSink)
	if !ok {
		logger.Warn("collect handler fired without a sink", "drop_id", drop.ID)

		return
	}
	position, ok := geofence.CollectPosition(ctx)
	if !ok {
		logger.Warn("collect handler fired without a position", "drop_id", drop.ID)

		return
	}

	result := &usecase.CollectResult{
		EventID:        uuid.NewString(),
		DropID:         drop.ID,
		ContentType:    drop.ContentType,
		DistanceMeters: geofence.DistanceMeters(position, drop.Position),
		CollectedAt:    s.now().UTC(),
	}
	switch {
	case drop.ContentType.IsFile() && isExternalURL(drop.ContentRef):
		result.ContentURL = drop.ContentRef
	case drop.ContentType.IsFile():
		result.ContentURL = constants.ContentPathPrefix + drop.ContentRef
	default:
		result.Text = drop.ContentRef
	}
	sink.result = result

	s.metrics.CountCollect(service.CollectOutcomeCollected)

	event := &service.DropCollectedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        result.EventID,
		DropID:         drop.ID,
		SessionID:      sink.sessionID,
		Latitude:       position.Lat,
		Longitude:      position.Lng,
		DistanceMeters: result.DistanceMeters,
		CollectedAt:    result.CollectedAt,
	}
	if err := s.publisher.PublishDropCollected(ctx, event); err != nil {
		logger.Error("failed to publish drop collected event", "drop_id", drop.ID, "event_id", event.EventID, "error", err)
	}

	logger.Info("drop collected", "drop_id", drop.ID, "session_id", sink.sessionID, "distance_m", result.DistanceMeters)
}

func (s *mapService) sessionOrCreate(ctx context.Context, sessionID string) *mapSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	if entry, ok := s.sessions[sessionID]; ok {
		entry.lastSeen = s.now()

		return entry
	}

	session := geofence.NewSession(s.onCollect)
	entry := &mapSession{
		session:     session,
		unsubscribe: s.feed.Subscribe(session.UpdateDrops),
		lastSeen:    s.now(),
	}
	session.SeedDrops(s.feed.Snapshot())
	s.sessions[sessionID] = entry

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("map session started", "session_id", sessionID)

	return entry
}

func (s *mapService) lookupSession(sessionID string) (*mapSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	entry.lastSeen = s.now()

	return entry, nil
}

// sweepLocked drops sessions idle for longer than the TTL. s.mu must be held.
func (s *mapService) sweepLocked() {
	if s.sessionTTL <= 0 {
		return
	}

	now := s.now()
	for id, entry := range s.sessions {
		if now.Sub(entry.lastSeen) > s.sessionTTL {
			delete(s.sessions, id)
			entry.unsubscribe()
			s.logger.Debug("map session expired", "session_id", id)
		}
	}
}

func findDrop(drops []entity.Drop, id string) (entity.Drop, bool) {
	for _, drop := range drops {
		if drop.ID == id {
			return drop, true
		}
	}

	return entity.Drop{}, false
}

// notInReach builds the out-of-reach error, carrying the hint of the pass
// that decided it.
func notInReach(markers []geofence.MarkerPresentation, dropID string) error {
	for _, marker := range markers {
		for _, item := range marker.Items {
			if item.DropID == dropID && item.Hint != "" {
				return domainerrors.ErrDropNotInReach.WithDetails(item.Hint)
			}
		}
	}

	return domainerrors.ErrDropNotInReach
}

func validatePosition(position *entity.Coordinate) error {
	if position != nil && !position.InRange() {
		return domainerrors.ErrValidationFailed.WithDetails("position must be a valid latitude and longitude")
	}

	return nil
}

func validateSessionID(sessionID string) error {
	if sessionID == "" || len(sessionID) > constants.MaxSessionIDLength {
		return domainerrors.ErrValidationFailed.WithDetails("invalid session id")
	}

	return nil
}

func isExternalURL(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}
