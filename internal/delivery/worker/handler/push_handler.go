// Package handler receives Pub/Sub pushes for the collector worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zumap/config"
	deliverycontext "zumap/internal/delivery/context"
	"zumap/internal/domain/constants"
	"zumap/internal/domain/entity"
	"zumap/internal/domain/repository"
	"zumap/internal/domain/service"
	"zumap/internal/errors"
	"zumap/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks a failure Pub/Sub should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a push request's OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler records drop collect events delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	collectionRepo repository.CollectionRepository
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	CollectionRepo repository.CollectionRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local pushes and develop environments carry no token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		collectionRepo: params.CollectionRepo,
		now:            time.Now,
	}
}

// HandlePush records one collect event. Malformed messages are rejected with
// 400, store failures answer 503 so Pub/Sub redelivers, and redelivered
// events that were already recorded are acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Collector] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Collector] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Collector] Failed to decode collect event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.recordCollection(ctx, event); err != nil {
		reqLogger.Error("[Collector] Failed to record collect event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func decodeEvent(pushMsg *pubsub.PushMessage) (*service.DropCollectedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 data")
	}

	var event service.DropCollectedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "invalid event json")
	}
	if event.EventID == "" || event.DropID == "" {
		return nil, errors.New("event is missing event_id or drop_id")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the push request itself
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.DropCollectedEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) recordCollection(ctx context.Context, event *service.DropCollectedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	record := &entity.CollectionRecord{
		ID:             uuid.NewString(),
		EventID:        event.EventID,
		DropID:         event.DropID,
		SessionID:      event.SessionID,
		DistanceMeters: event.DistanceMeters,
		CollectedAt:    event.CollectedAt,
		RecordedAt:     h.now(),
	}
	if record.CollectedAt.IsZero() {
		record.CollectedAt = record.RecordedAt
	}

	if err := h.collectionRepo.RecordCollection(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateCollection) {
			logger.Info("[Collector] Collect event already recorded", slog.String("event_id", event.EventID))

			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	attrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("drop_id", event.DropID),
		slog.Float64("distance_meters", event.DistanceMeters),
	}
	if total, err := h.collectionRepo.CountCollectionsByDrop(ctx, event.DropID); err == nil {
		attrs = append(attrs, slog.Int64("times_collected", total))
	} else {
		logger.Warn("[Collector] Failed to count collections", slog.Any("error", err))
	}
	logger.Info("[Collector] Collect event recorded", attrs...)

	return nil
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
