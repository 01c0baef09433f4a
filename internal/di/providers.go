package di

import (
	"fmt"
	"sync"

	"TronLens/internal/domain/repository"
	"TronLens/internal/handler/api"
	internalrepo "TronLens/internal/repository"
	"TronLens/internal/service/cache"
	"TronLens/internal/service/tronscan"
	"TronLens/internal/usecase"
	"TronLens/pkg/config"
	xhttp "TronLens/pkg/http"
	pkgkafka "TronLens/pkg/kafka"
	applogger "TronLens/pkg/logger"
	"TronLens/pkg/metrics"
	"TronLens/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

const serviceName = "tronlens"

// ProvideKafkaProducer creates the producer backing the log collector.
// It returns nil when the collector is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, func(), error) {
	if !cfg.Collector.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(collectorProducerOptions(cfg)...)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, func() { _ = producer.Close() }, nil
}

func collectorProducerOptions(cfg *config.Config) []pkgkafka.ProducerOption {
	cc := cfg.Collector
	return []pkgkafka.ProducerOption{
		pkgkafka.WithBrokers(cc.Brokers),
		pkgkafka.WithCompression(cc.Compression),
		pkgkafka.WithRequiredAcks(cc.RequiredAcks),
		pkgkafka.WithMaxAttempts(cc.MaxAttempts),
		pkgkafka.WithBatchSize(cc.BatchSize),
		pkgkafka.WithBatchBytes(cc.BatchBytes),
		pkgkafka.WithBatchTimeout(cc.BatchTimeout),
		pkgkafka.WithTimeouts(cc.WriteTimeout, cc.ReadTimeout),
		pkgkafka.WithAsync(cc.Async),
		pkgkafka.WithHashByKey(true),
	}
}

// ProvideLogger builds the application logger and, when a producer is
// available, attaches the aggregated log collector.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, func(), error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if producer == nil {
		return l, func() {}, nil
	}
	l.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   cfg.Collector.FlushInterval,
		CountThreshold: cfg.Collector.CountThreshold,
		Topic:          cfg.Collector.Topic,
		Publisher:      internalrepo.NewKafkaLogPublisher(producer, serviceName),
	})
	l.Info("log collector attached",
		applogger.Strings("brokers", cfg.Collector.Brokers),
		applogger.String("topic", cfg.Collector.Topic),
	)
	return l, l.RemoveCollector, nil
}

var (
	metricsOnce   sync.Once
	sharedMetrics repository.Metrics
)

// ProvideMetrics returns the Prometheus recorder on the default registry. The
// collectors are registered once per process, so repeated wiring shares them.
func ProvideMetrics() repository.Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = metrics.New(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// ProvideExplorerClient creates the TronScan API client.
func ProvideExplorerClient(cfg *config.Config, m repository.Metrics) *tronscan.Client {
	return tronscan.New(tronscan.Config{
		BaseURL:   cfg.TronScan.BaseURL,
		APIKey:    cfg.TronScan.APIKey,
		Timeout:   cfg.TronScan.Timeout,
		UserAgent: cfg.TronScan.UserAgent,
		Origin:    cfg.TronScan.Origin,
		Referer:   cfg.TronScan.Referer,
	}, m)
}

// ProvideExplorer exposes the client through the domain interface.
func ProvideExplorer(c *tronscan.Client) repository.Explorer {
	return c
}

// ProvideAnalyzer creates the address analysis use case.
func ProvideAnalyzer(cfg *config.Config, ex repository.Explorer, m repository.Metrics, l *applogger.Logger) *usecase.AddressAnalyzer {
	return usecase.NewAddressAnalyzer(ex, m,
		usecase.WithBatchSize(cfg.Analysis.BatchSize),
		usecase.WithTopCounterparties(cfg.Analysis.TopCounterparty),
		usecase.WithLocation(cfg.Location()),
		usecase.WithAnalyzerLogger(l),
	)
}

// ProvideProxyCache creates the proxy body cache. It returns nil when the TTL
// is zero so no backend connection is opened.
func ProvideProxyCache(cfg *config.Config) (cache.BytesCache, func(), error) {
	if cfg.Cache.TTL <= 0 {
		return nil, func() {}, nil
	}
	c, closer, err := cache.New(cache.Config{
		Backend: cfg.Cache.Backend,
		Redis: cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("proxy cache: %w", err)
	}
	return c, func() { _ = closer.Close() }, nil
}

// ProvideProxyHandler creates the CORS pass-through handler.
func ProvideProxyHandler(cfg *config.Config, l *applogger.Logger, c *tronscan.Client, bc cache.BytesCache) *api.ProxyEchoHandler {
	return api.NewProxyEchoHandler(l, c, bc, cfg.Cache.TTL)
}

// ProvideAnalysisHandler creates the JSON analysis handler.
func ProvideAnalysisHandler(l *applogger.Logger, a *usecase.AddressAnalyzer) *api.AnalysisEchoHandler {
	return api.NewAnalysisEchoHandler(l, a)
}

// ProvideHTTPHandler groups every route handler.
func ProvideHTTPHandler(proxy *api.ProxyEchoHandler, analysis *api.AnalysisEchoHandler) xhttp.Handler {
	return xhttp.Handlers{proxy, analysis}
}

// ProvideHTTPServer creates the echo server.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, l *applogger.Logger) *xhttp.Server {
	return xhttp.NewServer(h,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, srv *xhttp.Server, l *applogger.Logger) *server.App {
	return server.New(cfg, srv, l)
}
