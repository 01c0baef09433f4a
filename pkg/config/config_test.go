package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 3000, c.Server.Port)
	assert.Equal(t, 50, c.Analysis.BatchSize)
	assert.Equal(t, 30*time.Second, c.TronScan.Timeout)
	assert.Equal(t, "memory", c.Cache.Backend)
	assert.Zero(t, c.Cache.TTL)
	assert.False(t, c.Collector.Enabled)
	assert.Equal(t, 1, c.Collector.RequiredAcks)
	assert.Equal(t, 3, c.Collector.MaxAttempts)
	assert.Equal(t, 100, c.Collector.BatchSize)
	assert.Equal(t, 1048576, c.Collector.BatchBytes)
	assert.Equal(t, 500*time.Millisecond, c.Collector.BatchTimeout)
	assert.Equal(t, 10*time.Second, c.Collector.WriteTimeout)
	assert.Equal(t, 10*time.Second, c.Collector.ReadTimeout)
	assert.False(t, c.Collector.Async)
	assert.NoError(t, c.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
tronscan:
  api_key: abc
analysis:
  batch_size: 20
  timezone: Asia/Shanghai
cache:
  backend: redis
  ttl: 15s
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "abc", c.TronScan.APIKey)
	assert.Equal(t, 20, c.Analysis.BatchSize)
	assert.Equal(t, "redis", c.Cache.Backend)
	assert.Equal(t, 15*time.Second, c.Cache.TTL)
	assert.Equal(t, "tronlens", c.Cache.Redis.Prefix)
	assert.Equal(t, "https://apilist.tronscanapi.com/api", c.TronScan.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "cache:\n  backend: memcached\n"))
	assert.ErrorContains(t, err, "cache.backend")

	_, err = Load(writeConfig(t, "collector:\n  enabled: true\n  brokers: []\n"))
	assert.ErrorContains(t, err, "collector.brokers")

	_, err = Load(writeConfig(t, "analysis:\n  timezone: Nowhere/Land\n"))
	assert.ErrorContains(t, err, "analysis.timezone")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("TRONSCAN_API_KEY", "from-env")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.TronScan.APIKey)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Collector.Brokers)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLocation(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, c.Location())

	c.Analysis.Timezone = "Asia/Shanghai"
	assert.Equal(t, "Asia/Shanghai", c.Location().String())
}
