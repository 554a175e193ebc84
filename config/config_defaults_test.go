package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "sql", cfg.Store.Driver)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "drops", cfg.Firebase.DropsPath)
	assert.Equal(t, "10MB", cfg.Blob.MaxUploadSize)
	assert.Equal(t, 1000.0, cfg.Geofence.MaxRevealDistance)
	assert.Equal(t, 10000.0, cfg.Geofence.MaxNearbyRadius)
	assert.Equal(t, 30*time.Minute, cfg.Geofence.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.Feed.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, cfg.Feed.PollInterval, cfg.Probe.Interval)
	assert.False(t, cfg.TestRoutes.Enabled)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, cfg.HTTP.Port, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store:    &StoreConfig{Driver: "firebase"},
		Geofence: &GeofenceConfig{MaxRevealDistance: 250, SessionTTL: time.Minute},
		Feed:     &FeedConfig{PollInterval: time.Second},
		Worker:   &WorkerConfig{Port: 8081},
	}
	cfg.HTTP.Port = 8080
	applyDefaults(cfg)

	assert.Equal(t, "firebase", cfg.Store.Driver)
	assert.Equal(t, 250.0, cfg.Geofence.MaxRevealDistance)
	assert.Equal(t, 2500.0, cfg.Geofence.MaxNearbyRadius)
	assert.Equal(t, time.Minute, cfg.Geofence.SessionTTL)
	assert.Equal(t, time.Second, cfg.Probe.Interval)
	assert.Equal(t, 8081, cfg.Worker.Port)
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env:
  env: develop
  serviceName: zumap
http:
  port: 8080
geofence:
  maxRevealDistance: 500
  sessionTtl: 10m
probe:
  demoDrops:
    - id: demo-1
      lat: 47.39339
      lng: 8.51631
      type: text
      content: hello
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zumap.yaml"), []byte(yaml), 0o600))

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GEOFENCE_SESSIONTTL", "90s")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("zumap", rel)
	require.NoError(t, err)

	assert.Equal(t, "zumap", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 500.0, cfg.Geofence.MaxRevealDistance)
	assert.Equal(t, 90*time.Second, cfg.Geofence.SessionTTL)
	require.Len(t, cfg.Probe.DemoDrops, 1)
	assert.Equal(t, "demo-1", cfg.Probe.DemoDrops[0].ID)
	assert.Equal(t, "hello", cfg.Probe.DemoDrops[0].Content)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
