package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("api port = %d", cfg.API.Port)
	}
	if cfg.Mongo.URI != "" {
		t.Errorf("mongo uri = %q, want empty (in-memory mode)", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "gofolio" {
		t.Errorf("mongo database = %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.MaxConnectAttempts != 2 {
		t.Errorf("max connect attempts = %d", cfg.Mongo.MaxConnectAttempts)
	}
	if got := cfg.Mongo.ConnectTimeout().Milliseconds(); got != 5000 {
		t.Errorf("connect timeout = %dms", got)
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr())
	}
	if cfg.Worker.SyncSchedule != "@every 1h" {
		t.Errorf("sync schedule = %q", cfg.Worker.SyncSchedule)
	}
	if !cfg.Storage.SeedDemoData {
		t.Error("demo data seeding should default to on")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "portfolio")
	t.Setenv("MONGODB_CONNECT_TIMEOUT_MS", "750")
	t.Setenv("MONGODB_MAX_CONNECT_ATTEMPTS", "5")
	t.Setenv("MONGODB_RETRY_BASE_DELAY_MS", "250")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("WORKER_CONCURRENCY", "4")
	t.Setenv("WORKER_SYNC_SCHEDULE", "@every 10m")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.API.Port != 9090 {
		t.Errorf("api port = %d", cfg.API.Port)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Errorf("mongo uri = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "portfolio" {
		t.Errorf("mongo database = %q", cfg.Mongo.Database)
	}
	if got := cfg.Mongo.ConnectTimeout().Milliseconds(); got != 750 {
		t.Errorf("connect timeout = %dms", got)
	}
	if cfg.Mongo.MaxConnectAttempts != 5 {
		t.Errorf("max connect attempts = %d", cfg.Mongo.MaxConnectAttempts)
	}
	if got := cfg.Mongo.RetryBaseDelay().Milliseconds(); got != 250 {
		t.Errorf("retry base delay = %dms", got)
	}
	if cfg.Redis.Addr() != "cache:6380" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr())
	}
	if cfg.Worker.Concurrency != 4 {
		t.Errorf("worker concurrency = %d", cfg.Worker.Concurrency)
	}
	if cfg.Storage.SeedDemoData {
		t.Error("seeding should be off")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"zero port", map[string]string{"API_PORT": "0"}},
		{"zero attempts", map[string]string{"MONGODB_MAX_CONNECT_ATTEMPTS": "0"}},
		{"zero timeout", map[string]string{"MONGODB_CONNECT_TIMEOUT_MS": "0"}},
		{"negative delay", map[string]string{"MONGODB_RETRY_BASE_DELAY_MS": "-1"}},
		{"zero redis port", map[string]string{"REDIS_PORT": "0"}},
		{"zero concurrency", map[string]string{"WORKER_CONCURRENCY": "0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
