package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zumap/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPProbe_Check(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ok.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()

	tests := []struct {
		name string
		url  string
		want service.NetworkState
	}{
		{"disabled", "", service.NetworkUnknown},
		{"reachable", ok.URL, service.NetworkConnected},
		{"server error", failing.URL, service.NetworkDisconnected},
		{"timeout", slow.URL, service.NetworkDisconnected},
		{"bad url", "://nope", service.NetworkUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewHTTPProbe(tt.url, 50*time.Millisecond, discardLogger())
			assert.Equal(t, tt.want, p.Check(context.Background()))
		})
	}
}
