package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"badgeregistry/internal/badge/models"
	pkgstrings "badgeregistry/pkg/platform/strings"
)

// Config is the full process configuration.
type Config struct {
	Server   Server
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Registry RegistryConfig
	Outbox   OutboxConfig
	Logging  LoggingConfig
	Tracing  TracingConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	JWTSigningKey   string
	JWTIssuer       string
	JWTAudience     string
	RequestTimeout  time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the Postgres store. An empty URL keeps the ledger
// in memory.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	TxTimeout       time.Duration
}

// RedisConfig configures the metadata cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MetadataTTL  time.Duration
}

// KafkaConfig configures event publishing. With no brokers, events are
// written to the log instead.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// RegistryConfig holds the moderator list and the contract metadata.
type RegistryConfig struct {
	Moderators []models.AccountID
	Metadata   models.ContractMetadata
}

type OutboxConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// TracingConfig enables OTLP export when Endpoint is set.
type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

// FromEnv builds the configuration from environment variables, after loading
// an optional .env file.
func FromEnv() (Config, error) {
	if envFile := os.Getenv("BADGES_ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	moderators, err := parseModerators(os.Getenv("BADGES_MODERATORS"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server: Server{
			Addr:            getEnv("BADGES_ADDR", ":8080"),
			JWTSigningKey:   getEnv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			JWTIssuer:       getEnv("JWT_ISSUER", "badgeregistry"),
			JWTAudience:     getEnv("JWT_AUDIENCE", "badgeregistry"),
			RequestTimeout:  getDuration("BADGES_REQUEST_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDuration("BADGES_WRITE_TIMEOUT", 35*time.Second),
			ShutdownTimeout: getDuration("BADGES_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			TxTimeout:       getDuration("DATABASE_TX_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			MetadataTTL:  getDuration("REDIS_METADATA_TTL", time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers:  pkgstrings.DedupeAndTrim(strings.Split(os.Getenv("KAFKA_BROKERS"), ",")),
			Topic:    getEnv("KAFKA_TOPIC", "badge-events"),
			ClientID: getEnv("KAFKA_CLIENT_ID", "badgeregistry"),
		},
		Registry: RegistryConfig{
			Moderators: moderators,
			Metadata:   contractMetadataFromEnv(),
		},
		Outbox: OutboxConfig{
			PollInterval: getDuration("OUTBOX_POLL_INTERVAL", time.Second),
			BatchSize:    getInt("OUTBOX_BATCH_SIZE", 100),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tracing: TracingConfig{
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "badgeregistry"),
		},
	}
	return cfg, nil
}

func parseModerators(raw string) ([]models.AccountID, error) {
	accounts := pkgstrings.DedupeAndTrim(strings.Split(raw, ","))
	out := make([]models.AccountID, 0, len(accounts))
	for _, a := range accounts {
		id, err := models.ParseAccountID(a)
		if err != nil {
			return nil, fmt.Errorf("BADGES_MODERATORS: %q: %w", a, err)
		}
		out = append(out, id)
	}
	return out, nil
}

// contractMetadataFromEnv overlays configured fields on the defaults.
func contractMetadataFromEnv() models.ContractMetadata {
	m := models.DefaultContractMetadata()
	m.Spec = getEnv("CONTRACT_SPEC", m.Spec)
	m.Name = getEnv("CONTRACT_NAME", m.Name)
	m.Symbol = getEnv("CONTRACT_SYMBOL", m.Symbol)
	m.Icon = optionalEnv("CONTRACT_ICON")
	m.BaseURI = optionalEnv("CONTRACT_BASE_URI")
	m.Reference = optionalEnv("CONTRACT_REFERENCE")
	m.ReferenceHash = optionalEnv("CONTRACT_REFERENCE_HASH")
	return m
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func optionalEnv(key string) *string {
	if v := os.Getenv(key); v != "" {
		return &v
	}
	return nil
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
