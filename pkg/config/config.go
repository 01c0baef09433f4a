package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"TronLens/pkg/util"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"3000"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"2s"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	TronScan struct {
		BaseURL   string        `yaml:"base_url" default:"https://apilist.tronscanapi.com/api"`
		APIKey    string        `yaml:"api_key"`
		Timeout   time.Duration `yaml:"timeout" default:"30s"`
		UserAgent string        `yaml:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
		Origin    string        `yaml:"origin" default:"https://tronscan.org"`
		Referer   string        `yaml:"referer" default:"https://tronscan.org/"`
	} `yaml:"tronscan"`
	Analysis struct {
		BatchSize       int    `yaml:"batch_size" default:"50"`
		TopCounterparty int    `yaml:"top_counterparties" default:"10"`
		Timezone        string `yaml:"timezone" default:"UTC"`
	} `yaml:"analysis"`
	Cache struct {
		Backend string        `yaml:"backend" default:"memory"` // memory | redis
		TTL     time.Duration `yaml:"ttl"`                      // 0 disables proxy caching
		Redis   struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"tronlens"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Collector struct {
		Enabled        bool          `yaml:"enabled"`
		Brokers        []string      `yaml:"brokers"`
		Topic          string        `yaml:"topic" default:"tronlens.logs"`
		Compression    string        `yaml:"compression" default:"gzip"`
		FlushInterval  time.Duration `yaml:"flush_interval" default:"30s"`
		CountThreshold int           `yaml:"count_threshold" default:"100"`
		RequiredAcks   int           `yaml:"required_acks" default:"1"`
		MaxAttempts    int           `yaml:"max_attempts" default:"3"`
		BatchSize      int           `yaml:"batch_size" default:"100"`
		BatchBytes     int           `yaml:"batch_bytes" default:"1048576"`
		BatchTimeout   time.Duration `yaml:"batch_timeout" default:"500ms"`
		WriteTimeout   time.Duration `yaml:"write_timeout" default:"10s"`
		ReadTimeout    time.Duration `yaml:"read_timeout" default:"10s"`
		Async          bool          `yaml:"async"`
	} `yaml:"collector"`
}

// Default returns a config populated only from struct defaults.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A missing file is not an error: defaults plus env are enough to run.
func LoadWithEnv(path string) (*Config, error) {
	var (
		c   *Config
		err error
	)
	if _, statErr := os.Stat(path); statErr == nil {
		c, err = Load(path)
	} else {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}

	applyEnv(c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("TRONSCAN_API_KEY"); v != "" {
		c.TronScan.APIKey = v
	}
	if v := os.Getenv("TRONSCAN_BASE_URL"); v != "" {
		c.TronScan.BaseURL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Collector.Brokers = strings.Split(v, ",")
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.TronScan.BaseURL == "" {
		return fmt.Errorf("tronscan.base_url is required")
	}
	if c.Analysis.BatchSize <= 0 {
		return fmt.Errorf("analysis.batch_size must be positive, got %d", c.Analysis.BatchSize)
	}
	if _, err := time.LoadLocation(c.Analysis.Timezone); err != nil {
		return fmt.Errorf("analysis.timezone: %w", err)
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Collector.Enabled && len(c.Collector.Brokers) == 0 {
		return fmt.Errorf("collector.brokers cannot be empty when collector is enabled")
	}
	return nil
}

// Location returns the timezone used to bucket transfers by day.
func (c *Config) Location() *time.Location {
	return util.LoadLocation(c.Analysis.Timezone)
}
