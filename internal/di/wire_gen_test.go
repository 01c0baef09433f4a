package di

import (
	"testing"
	"time"

	"TronLens/pkg/config"
	pkgkafka "TronLens/pkg/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_Defaults(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Log.Format = "json"

	app, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotPanics(t, cleanup)
}

func TestProvideProxyCache(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	c, cleanup, err := ProvideProxyCache(cfg)
	require.NoError(t, err)
	assert.Nil(t, c)
	cleanup()

	cfg.Cache.TTL = 1
	c, cleanup, err = ProvideProxyCache(cfg)
	require.NoError(t, err)
	assert.NotNil(t, c)
	cleanup()
}

func TestProvideKafkaProducer_Disabled(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	p, cleanup, err := ProvideKafkaProducer(cfg)
	require.NoError(t, err)
	assert.Nil(t, p)
	cleanup()
}

func TestInitializeApp_Twice(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		app, cleanup, err := InitializeApp(cfg)
		require.NoError(t, err)
		require.NotNil(t, app)
		cleanup()
	}
}

func TestProvideMetrics_Shared(t *testing.T) {
	var first, second interface{}
	assert.NotPanics(t, func() {
		first = ProvideMetrics()
		second = ProvideMetrics()
	})
	assert.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestCollectorProducerOptions(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Collector.Brokers = []string{"k1:9092"}
	cfg.Collector.MaxAttempts = 7
	cfg.Collector.BatchSize = 25
	cfg.Collector.BatchBytes = 4096
	cfg.Collector.WriteTimeout = 2 * time.Second
	cfg.Collector.ReadTimeout = 3 * time.Second
	cfg.Collector.Async = true

	var pc pkgkafka.ProducerConfig
	for _, opt := range collectorProducerOptions(cfg) {
		opt(&pc)
	}

	assert.Equal(t, []string{"k1:9092"}, pc.Brokers)
	assert.Equal(t, "gzip", pc.Compression)
	assert.Equal(t, 1, pc.RequiredAcks)
	assert.Equal(t, 7, pc.MaxAttempts)
	assert.Equal(t, 25, pc.BatchSize)
	assert.Equal(t, 4096, pc.BatchBytes)
	assert.Equal(t, 500*time.Millisecond, pc.BatchTimeout)
	assert.Equal(t, 2*time.Second, pc.WriteTimeout)
	assert.Equal(t, 3*time.Second, pc.ReadTimeout)
	assert.True(t, pc.Async)
	assert.True(t, pc.HashByKey)
}

func TestProvideKafkaProducer_Enabled(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Collector.Enabled = true
	cfg.Collector.Brokers = []string{"127.0.0.1:1"}

	p, cleanup, err := ProvideKafkaProducer(cfg)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.NotPanics(t, cleanup)
}
