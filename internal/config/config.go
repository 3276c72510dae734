package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Worker  WorkerConfig  `mapstructure:"worker"`
	Storage StorageConfig `mapstructure:"storage"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig contains connection options for the document database.
// An empty URI means the process runs permanently on in-memory storage.
type MongoConfig struct {
	URI                string `mapstructure:"uri"`
	Database           string `mapstructure:"database"`
	MaxPoolSize        uint64 `mapstructure:"max_pool_size"`
	ConnectTimeoutMS   int    `mapstructure:"connect_timeout_ms"`
	MaxConnectAttempts int    `mapstructure:"max_connect_attempts"`
	RetryBaseDelayMS   int    `mapstructure:"retry_base_delay_ms"`
}

// ConnectTimeout returns the per-attempt connection timeout.
func (m MongoConfig) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutMS) * time.Millisecond
}

// RetryBaseDelay returns the base backoff delay between connection attempts.
func (m MongoConfig) RetryBaseDelay() time.Duration {
	return time.Duration(m.RetryBaseDelayMS) * time.Millisecond
}

// RedisConfig contains Redis connection settings for sessions and the task queue.
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr builds a host:port address for go-redis and asynq.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// WorkerConfig contains settings for the background sync worker.
type WorkerConfig struct {
	Concurrency  int    `mapstructure:"concurrency"`
	SyncSchedule string `mapstructure:"sync_schedule"`
}

// StorageConfig contains storage-layer behavior switches.
type StorageConfig struct {
	SeedDemoData bool `mapstructure:"seed_demo_data"`
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "gofolio")
	v.SetDefault("mongo.max_pool_size", 10)
	v.SetDefault("mongo.connect_timeout_ms", 5000)
	v.SetDefault("mongo.max_connect_attempts", 2)
	v.SetDefault("mongo.retry_base_delay_ms", 1000)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("worker.concurrency", 10)
	v.SetDefault("worker.sync_schedule", "@every 1h")
	v.SetDefault("storage.seed_demo_data", true)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                   "API_PORT",
		"mongo.uri":                  "MONGODB_URI",
		"mongo.database":             "MONGODB_DATABASE",
		"mongo.max_pool_size":        "MONGODB_MAX_POOL_SIZE",
		"mongo.connect_timeout_ms":   "MONGODB_CONNECT_TIMEOUT_MS",
		"mongo.max_connect_attempts": "MONGODB_MAX_CONNECT_ATTEMPTS",
		"mongo.retry_base_delay_ms":  "MONGODB_RETRY_BASE_DELAY_MS",
		"redis.host":                 "REDIS_HOST",
		"redis.port":                 "REDIS_PORT",
		"worker.concurrency":         "WORKER_CONCURRENCY",
		"worker.sync_schedule":       "WORKER_SYNC_SCHEDULE",
		"storage.seed_demo_data":     "SEED_DEMO_DATA",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Mongo.URI != "" && cfg.Mongo.Database == "" {
		return errors.New("mongo database is required when a uri is set")
	}
	if cfg.Mongo.ConnectTimeoutMS <= 0 {
		return errors.New("mongo connect timeout must be positive")
	}
	if cfg.Mongo.MaxConnectAttempts <= 0 {
		return errors.New("mongo max connect attempts must be positive")
	}
	if cfg.Mongo.RetryBaseDelayMS < 0 {
		return errors.New("mongo retry base delay must not be negative")
	}
	if cfg.Redis.Host == "" {
		return errors.New("redis host is required")
	}
	if cfg.Redis.Port <= 0 {
		return errors.New("redis port must be positive")
	}
	if cfg.Worker.Concurrency <= 0 {
		return errors.New("worker concurrency must be positive")
	}
	if cfg.Worker.SyncSchedule == "" {
		return errors.New("worker sync schedule is required")
	}
	return nil
}
