package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"zumap/config"
	deliverycontext "zumap/internal/delivery/context"
	"zumap/internal/domain/constants"
	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/geofence"
	"zumap/internal/domain/repository"
	"zumap/internal/domain/service"
	"zumap/internal/domain/spatial"
	"zumap/internal/errors"
	"zumap/internal/usecase"
	"zumap/internal/util"

	"github.com/google/uuid"
)

type dropService struct {
	dropRepo     repository.DropRepository
	contentStore service.ContentStore
	feed         usecase.DropFeed
	announcer    service.DropAnnouncer
	qrcode       service.QRCodeService
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// NewDropService creates a new drop service instance
func NewDropService(
	dropRepo repository.DropRepository,
	contentStore service.ContentStore,
	feed usecase.DropFeed,
	announcer service.DropAnnouncer,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DropUsecase {
	return &dropService{
		dropRepo:     dropRepo,
		contentStore: contentStore,
		feed:         feed,
		announcer:    announcer,
		qrcode:       qrcode,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateDrop validates the input, uploads any file payload and writes the record.
// The payload is stored first so a record never points at missing content.
func (s *dropService) CreateDrop(ctx context.Context, input *usecase.CreateDropInput) (*entity.Drop, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	contentType, err := s.validateCreateInput(input)
	if err != nil {
		return nil, err
	}

	contentRef := strings.TrimSpace(input.Text)
	if contentType.IsFile() {
		key, err := s.contentStore.Put(ctx, input.File, contentType)
		if err != nil {
			logger.Error("failed to store drop content", "type", contentType, "error", err)

			return nil, domainerrors.ErrContentUploadFailed
		}
		contentRef = key
	}

	drop := &entity.Drop{
		ID:             uuid.NewString(),
		Position:       entity.Coordinate{Lat: input.Latitude, Lng: input.Longitude},
		ContentType:    contentType,
		ContentRef:     contentRef,
		Teaser:         strings.TrimSpace(input.Teaser),
		RevealDistance: input.RevealDistance,
		CreatedAt:      s.now().UTC(),
	}
	if drop.RevealDistance == 0 {
		drop.RevealDistance = geofence.DefaultRevealDistance
	}

	if err := s.dropRepo.CreateDrop(ctx, drop); err != nil {
		logger.Error("failed to create drop", "drop_id", drop.ID, "error", err)

		return nil, domainerrors.ErrDropCreationFailed
	}

	logger.Info("drop created", "drop_id", drop.ID, "type", drop.ContentType, "reveal_distance", drop.RevealDistance)

	if err := s.feed.Refresh(ctx); err != nil {
		logger.Warn("failed to refresh drop feed after create", "error", err)
	}
	if err := s.announcer.AnnounceDrop(ctx, drop); err != nil {
		logger.Warn("failed to announce drop", "drop_id", drop.ID, "error", err)
	}

	return drop, nil
}

func (s *dropService) validateCreateInput(input *usecase.CreateDropInput) (entity.ContentType, error) {
	if input == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("input is required")
	}

	position := entity.Coordinate{Lat: input.Latitude, Lng: input.Longitude}
	if !position.InRange() {
		return "", domainerrors.ErrValidationFailed.WithDetails("position must be a valid latitude and longitude")
	}

	contentType := entity.ContentType(strings.ToLower(strings.TrimSpace(input.ContentType)))
	if !contentType.IsKnown() {
		return "", domainerrors.ErrValidationFailed.WithDetails("type must be one of text, image, pdf")
	}

	if contentType.IsFile() {
		if len(input.File) == 0 {
			return "", domainerrors.ErrValidationFailed.WithDetails("file required")
		}
		maxSize, err := util.ParseBytes(s.config.Blob.MaxUploadSize)
		if err != nil {
			return "", errors.Wrap(err, "invalid blob.maxUploadSize")
		}
		if int64(len(input.File)) > maxSize {
			return "", domainerrors.ErrContentTooLarge.WithDetails("limit is " + util.FormatBytes(maxSize))
		}
	} else if strings.TrimSpace(input.Text) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("text required")
	}

	if utf8.RuneCountInString(strings.TrimSpace(input.Teaser)) > constants.MaxTeaserLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("teaser is too long")
	}

	reveal := input.RevealDistance
	if math.IsNaN(reveal) || math.IsInf(reveal, 0) || reveal < 0 || reveal > s.config.Geofence.MaxRevealDistance {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			"reveal distance must be between 0 and " + geofence.FormatThreshold(s.config.Geofence.MaxRevealDistance),
		)
	}

	return contentType, nil
}

// GetDrop looks in the feed first, so demo drops resolve too.
func (s *dropService) GetDrop(ctx context.Context, id string) (*entity.Drop, error) {
	if id == "" {
		return nil, domainerrors.ErrDropNotFound
	}

	if drop, found := findDrop(s.feed.Snapshot(), id); found {
		return &drop, nil
	}

	drop, err := s.dropRepo.FindDropByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDropNotFound) {
			return nil, domainerrors.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop by ID")
	}

	return drop, nil
}

func (s *dropService) ListDrops(ctx context.Context) ([]entity.Drop, error) {
	return s.feed.Snapshot(), nil
}

func (s *dropService) Nearby(ctx context.Context, center entity.Coordinate, radius float64) ([]spatial.NearbyDrop, error) {
	if !center.InRange() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("position must be a valid latitude and longitude")
	}

	maxRadius := s.config.Geofence.MaxNearbyRadius
	if radius == 0 {
		radius = maxRadius
	}
	if math.IsNaN(radius) || radius < 0 || radius > maxRadius {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"radius must be between 0 and " + geofence.FormatThreshold(maxRadius),
		)
	}

	return spatial.Nearby(s.feed.Snapshot(), center, radius), nil
}

func (s *dropService) OpenContent(ctx context.Context, key string) (io.ReadCloser, *service.ContentInfo, error) {
	if key == "" {
		return nil, nil, domainerrors.ErrContentNotFound
	}

	return s.contentStore.Open(ctx, key)
}

// ResetDrops clears every drop record and payload.
func (s *dropService) ResetDrops(ctx context.Context) (int64, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	removed, err := s.dropRepo.DeleteAllDrops(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete drops")
	}
	if err := s.contentStore.DeleteAll(ctx); err != nil {
		return removed, errors.Wrap(err, "failed to delete drop content")
	}

	logger.Warn("all drops reset", "removed", removed)

	if err := s.feed.Refresh(ctx); err != nil {
		logger.Warn("failed to refresh drop feed after reset", "error", err)
	}

	return removed, nil
}

func (s *dropService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	drop, err := s.GetDrop(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateDropQR(drop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

func (s *dropService) ResolveQR(ctx context.Context, data string) (*entity.Drop, error) {
	dropID, err := s.qrcode.ParseDropQR(data)
	if err != nil {
		return nil, domainerrors.ErrInvalidShareCode.WithDetails(err.Error())
	}

	return s.GetDrop(ctx, dropID)
}
