package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bantay/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T, cfg *config.Config) *gormSlogLogger {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	l, ok := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	require.True(t, ok)

	return l
}

func TestNewGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.SlowQueryThreshold = 500 * time.Millisecond

	l := newTestGormLogger(t, cfg)

	assert.Equal(t, 500*time.Millisecond, l.slowThreshold)
	assert.False(t, l.shouldLogSlow(400*time.Millisecond))
	assert.True(t, l.shouldLogSlow(600*time.Millisecond))
}

func TestNewGormSlogLogger_DefaultThreshold(t *testing.T) {
	l := newTestGormLogger(t, &config.Config{})

	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l := newTestGormLogger(t, &config.Config{})
	l.level = logger.Error

	assert.False(t, l.shouldLogError(gorm.ErrRecordNotFound))
	assert.True(t, l.shouldLogError(gorm.ErrInvalidData))
}
