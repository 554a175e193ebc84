package sqlstore

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"zumap/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "info queries are hidden outside debug")

	l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	buf.Reset()

	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	buf.Reset()

	l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	quiet := newGormSlogLogger(nil, &config.Config{}).(*gormSlogLogger)
	_, params := quiet.ParamsFilter(context.Background(), "INSERT ?", "secret")
	assert.Nil(t, params)

	cfg := &config.Config{}
	cfg.Env.Debug = true
	verbose := newGormSlogLogger(nil, cfg).(*gormSlogLogger)
	_, params = verbose.ParamsFilter(context.Background(), "INSERT ?", "secret")
	assert.Equal(t, []any{"secret"}, params)
}
