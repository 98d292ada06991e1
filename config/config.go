package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Consul   ConsulConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	AppEnv      string
	ServiceName string
	HTTPPort    string
	GRPCPort    string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StoreConfig selects the collection backend. Driver is "file" or "postgres".
type StoreConfig struct {
	Driver   string
	DataDir  string
	CacheTTL time.Duration
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// RedisConfig enables the distributed lock when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// KafkaConfig enables event publishing and the adjustment listener when Brokers is non-empty.
type KafkaConfig struct {
	Brokers          []string
	EventsTopic      string
	AdjustmentsTopic string
	GroupID          string
}

type ConsulConfig struct {
	Addr      string
	ServiceID string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:      getEnv("APP_ENV", "dev"),
			ServiceName: getEnv("SERVICE_NAME", "warehouse-service"),
			HTTPPort:    getEnv("HTTP_PORT", ":8083"),
			GRPCPort:    getEnv("GRPC_PORT", ":8084"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			Driver:   getEnv("STORE_DRIVER", "file"),
			DataDir:  getEnv("STORE_DATA_DIR", "data"),
			CacheTTL: time.Duration(getEnvInt("STORE_CACHE_TTL", 5)) * time.Second,
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_warehouse"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			LockTTL:  time.Duration(getEnvInt("REDIS_LOCK_TTL", 5)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:          getEnvSlice("KAFKA_BROKERS", nil),
			EventsTopic:      getEnv("KAFKA_TOPIC_EVENTS", "inventory.events"),
			AdjustmentsTopic: getEnv("KAFKA_TOPIC_ADJUSTMENTS", "inventory.adjustments"),
			GroupID:          getEnv("KAFKA_GROUP_WAREHOUSE", "warehouse"),
		},
		Consul: ConsulConfig{
			Addr:      getEnv("CONSUL_ADDR", ""),
			ServiceID: getEnv("SERVICE_ID", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "dev" || c.Server.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		var out []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return fallback
}
