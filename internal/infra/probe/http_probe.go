// Package probe checks upstream network reachability. When the check fails the
// drop feed falls back to configured demo drops.
package probe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"zumap/internal/domain/service"
)

type httpProbe struct {
	url     string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPProbe returns a probe issuing HEAD requests to url. An empty url
// yields a probe that always reports service.NetworkUnknown.
func NewHTTPProbe(url string, timeout time.Duration, logger *slog.Logger) service.NetworkProbe {
	return &httpProbe{
		url:     url,
		timeout: timeout,
		client:  &http.Client{},
		logger:  logger,
	}
}

// Check implements service.NetworkProbe. Any response below 500 counts as connected.
func (p *httpProbe) Check(ctx context.Context) service.NetworkState {
	if p.url == "" {
		return service.NetworkUnknown
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.logger.WarnContext(ctx, "Invalid probe URL", slog.String("url", p.url), slog.Any("error", err))

		return service.NetworkUnknown
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.DebugContext(ctx, "Network probe failed", slog.Any("error", err))

		return service.NetworkDisconnected
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return service.NetworkDisconnected
	}

	return service.NetworkConnected
}
