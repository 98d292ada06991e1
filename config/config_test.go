package config

import (
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	if cfg.Store.Driver != "file" {
		t.Errorf("Expected store driver file, got %s", cfg.Store.Driver)
	}
	if cfg.Store.CacheTTL != 5*time.Second {
		t.Errorf("Expected cache TTL 5s, got %v", cfg.Store.CacheTTL)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Expected redis to be disabled by default, got %q", cfg.Redis.Addr)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("Expected no kafka brokers by default, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("STORE_CACHE_TTL", "10")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()

	if cfg.Store.Driver != "postgres" {
		t.Errorf("Expected store driver postgres, got %s", cfg.Store.Driver)
	}
	if cfg.Store.CacheTTL != 10*time.Second {
		t.Errorf("Expected cache TTL 10s, got %v", cfg.Store.CacheTTL)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("Expected two trimmed brokers, got %v", cfg.Kafka.Brokers)
	}
	if !cfg.Logger.DisableCaller {
		t.Error("Expected DisableCaller to be true")
	}
	if cfg.Postgres.MaxOpenConns != 10 {
		t.Errorf("Expected fallback of 10 for invalid int, got %d", cfg.Postgres.MaxOpenConns)
	}
}
