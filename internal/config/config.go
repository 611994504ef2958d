package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, cache and messaging settings.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Host            string
	Port            string
	LogLevel        string
	LogFormat       string
	StoreTimeout    time.Duration // upper bound for a single store call
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig configures the book cache. An empty Host disables caching.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	BookTTL      time.Duration
}

// KafkaConfig configures rental event publishing. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// DSN builds the PostgreSQL connection string.
func (c PostgresConfig) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.DB,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

// Addr returns the host:port address of the Redis server.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads environment variables, optionally seeded from the env file at path,
// and returns the parsed configuration.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	if cfg.App.StoreTimeout, err = getEnvDuration("APP_STORE_TIMEOUT", "3s"); err != nil {
		return Config{}, err
	}
	if cfg.App.ShutdownTimeout, err = getEnvDuration("APP_SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "book_rental")
	if cfg.Postgres.Port, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return Config{}, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.PoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.MinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.BookTTL, err = getEnvDuration("REDIS_BOOK_TTL", "5m"); err != nil {
		return Config{}, err
	}

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "rental-events")

	return cfg, nil
}

// getEnv returns the value of key, or defaultValue when unset or empty.
// An explicitly empty REDIS_HOST or KAFKA_BROKERS therefore keeps the default;
// use "-" to switch those integrations off.
func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if val == "-" {
			return ""
		}
		return val
	}
	return defaultValue
}

func getEnvInt(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
