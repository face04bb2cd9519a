package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_YAMLValues(t *testing.T) {
	dir := writeConfigFile(t, `
env:
  env: dev
  serviceName: bantay
  log:
    pretty: true
    level: debug
http:
  port: 9000
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
postgres:
  host: localhost
  port: 5432
  username: bantay
  database: bantay
  sslMode: disable
  connMaxLifetime: 30m
phone:
  region: PH
`)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "bantay", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Log.Pretty)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, "PH", cfg.Phone.Region)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := writeConfigFile(t, `
http:
  port: 9000
postgres:
  host: localhost
  sslMode: disable
`)

	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "require", cfg.Postgres.SSLMode)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("config", t.TempDir())
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, "PH", cfg.Phone.Region)
	assert.Equal(t, defaultQRSize, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}
