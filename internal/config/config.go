// Package config loads service configuration from an env file and the
// process environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when a configured deployment has no signing key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY must be set when Postgres and media host are configured")

// Media backends.
const (
	MediaCloudinary = "cloudinary"
	MediaGCS        = "gcs"
)

// Config holds every setting of the gallery service and galleryctl.
type Config struct {
	AppHost       string
	AppPort       string
	LogLevel      string
	PublicBaseURL string
	MaxUploadMB   int

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SessionTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	MediaBackend           string
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	GCSBucket              string

	JWTSecretKey string
	JWTExp       time.Duration

	AdminEmail    string
	AdminPassword string

	ResyncSchedule string
}

// Load reads path (missing files are ignored) and then the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg Config
		err error
	)
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		v, err = strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	// Application
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:5173"), "/")
	cfg.MaxUploadMB = getInt("APP_MAX_UPLOAD_MB", "10")

	// PostgreSQL; an empty host switches the service to the demo dataset
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "")
	cfg.PostgresPort = getInt("POSTGRES_PORT", "5432")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "gallery")
	cfg.PostgresMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PostgresMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.SessionTTL = time.Duration(getInt("SESSION_TTL_SECOND", "86400")) * time.Second

	// Kafka; optional
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "artwork-events")
	cfg.KafkaGroupID = getEnv("KAFKA_GROUP_ID", "")

	// Media host
	cfg.MediaBackend = strings.ToLower(getEnv("MEDIA_BACKEND", MediaCloudinary))
	cfg.CloudinaryCloudName = getEnv("CLOUDINARY_CLOUD_NAME", "")
	cfg.CloudinaryUploadPreset = getEnv("CLOUDINARY_UPLOAD_PRESET", "")
	cfg.GCSBucket = getEnv("GCS_BUCKET", "")

	// JWT
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	cfg.JWTExp = time.Duration(getInt("JWT_EXP_SECOND", "86400")) * time.Second

	// Bootstrap administrator
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")

	cfg.ResyncSchedule = getEnv("RESYNC_SCHEDULE", "@every 1m")

	if err != nil {
		return nil, err
	}
	if cfg.MediaBackend != MediaCloudinary && cfg.MediaBackend != MediaGCS {
		return nil, fmt.Errorf("MEDIA_BACKEND: unsupported backend %q", cfg.MediaBackend)
	}
	if cfg.JWTSecretKey == "" {
		if cfg.Configured() {
			return nil, ErrMissingJWTSecret
		}
		// demo mode has no admins; tokens only need to survive this process
		if cfg.JWTSecretKey, err = randomSecret(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate JWT secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Configured reports whether the database and media credentials are present.
// Without them the service serves a fixed illustrative dataset read-only.
func (c *Config) Configured() bool {
	return c.PostgresHost != "" && c.MediaConfigured()
}

// MediaConfigured reports whether the selected media backend has credentials.
func (c *Config) MediaConfigured() bool {
	switch c.MediaBackend {
	case MediaGCS:
		return c.GCSBucket != ""
	default:
		return c.CloudinaryCloudName != "" && c.CloudinaryUploadPreset != ""
	}
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// KafkaEnabled reports whether change events are published and consumed.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
