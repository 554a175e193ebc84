// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the request ID on echo.Context.
const echoRequestIDKey = "request_id"

type scopeKey struct{}

// scope is everything a request attaches to its context.Context.
type scope struct {
	requestID string
	logger    *slog.Logger
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// GetRequestID returns the request ID stored on echo.Context, or an empty string.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// SetRequestID stores the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = requestID

	return context.WithValue(ctx, scopeKey{}, s)
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	s := scopeFrom(ctx)
	s.logger = logger

	return context.WithValue(ctx, scopeKey{}, s)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := scopeFrom(ctx).logger; logger != nil {
		return logger
	}

	return fallback
}
