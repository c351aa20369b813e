package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Backoffice ServiceConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Features   FeatureFlags
	LogLevel   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ServiceConfig points at the external back-office API. A zero Timeout
// means no timeout at all: upstream calls are allowed to hang, matching the
// behaviour the admin UI is written against.
type ServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host       string
	Port       int
	Password   string
	DB         int
	SessionTTL time.Duration
	DraftTTL   time.Duration
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + strconv.Itoa(r.Port)
}

type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

type FeatureFlags struct {
	EnableOrderEvents        bool
	EnableDraftPersistence   bool
	EnableSessionPersistence bool
}

func Load() *Config {
	// Optional; real deployments set env vars directly.
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Backoffice: ServiceConfig{
			BaseURL: getEnvString("BACKOFFICE_API_URL", "http://127.0.0.1:8000/api"),
			Timeout: time.Duration(getEnvInt("BACKOFFICE_API_TIMEOUT", 0)) * time.Second,
		},
		Redis: RedisConfig{
			Host:       getEnvString("REDIS_HOST", "localhost"),
			Port:       getEnvInt("REDIS_PORT", 6379),
			Password:   getEnvString("REDIS_PASSWORD", ""),
			DB:         getEnvInt("REDIS_DB", 0),
			SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
			DraftTTL:   time.Duration(getEnvInt("DRAFT_TTL_MINUTES", 120)) * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers:    []string{getEnvString("KAFKA_BROKER", "localhost:9092")},
			AuditTopic: getEnvString("KAFKA_AUDIT_TOPIC", "admin.audit"),
		},
		Features: FeatureFlags{
			EnableOrderEvents:        getEnvBool("ENABLE_ORDER_EVENTS", false),
			EnableDraftPersistence:   getEnvBool("ENABLE_DRAFT_PERSISTENCE", true),
			EnableSessionPersistence: getEnvBool("ENABLE_SESSION_PERSISTENCE", true),
		},
		LogLevel: getEnvString("LOG_LEVEL", "info"),
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
