package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

// Storage drivers.
const (
	StorageDriverLocal    = "local"
	StorageDriverSupabase = "supabase"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Article store selection
	StoreDriver   string
	MigrationsDir string

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// MongoDB configuration
	MongoURI      string
	MongoDatabase string

	// NATS configuration; empty URL disables status events
	NATSURL     string
	NATSSubject string

	// EmailJS configuration; empty service or public key disables email
	EmailJSEndpoint   string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	EmailTimeout      time.Duration

	// Notification worker pool
	NotificationWorkers        int
	NotificationQueueSize      int
	NotificationEnqueueTimeout time.Duration

	// Object storage configuration
	StorageDriver  string
	StorageDir     string
	StorageBaseURL string
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	StorageTimeout time.Duration

	// Review pipeline
	StagesFile     string
	ReviewerTokens string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	port := getEnv("SERVER_PORT", "8080")
	cfg := &Config{
		ServerPort:                 port,
		ReadTimeout:                getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:               getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:                getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:            getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		CORSOrigins:                getEnvList("CORS_ORIGINS"),
		StoreDriver:                strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		MigrationsDir:              getEnv("MIGRATIONS_DIR", "./migrations"),
		DBHost:                     getEnv("DB_HOST", "localhost"),
		DBPort:                     getEnvInt("DB_PORT", 5432),
		DBUser:                     getEnv("DB_USER", "postgres"),
		DBPassword:                 getEnv("DB_PASSWORD", "postgres"),
		DBName:                     getEnv("DB_NAME", "museum_review"),
		DBSSLMode:                  getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:                 int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:                 int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:          getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:          getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:        getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MongoURI:                   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:              getEnv("MONGO_DATABASE", "museum_review"),
		NATSURL:                    getEnv("NATS_URL", ""),
		NATSSubject:                getEnv("NATS_SUBJECT", "museum.articles.status"),
		EmailJSEndpoint:            getEnv("EMAILJS_ENDPOINT", ""),
		EmailJSServiceID:           getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID:          getEnv("EMAILJS_TEMPLATE_ID", "template_rejection"),
		EmailJSPublicKey:           getEnv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSPrivateKey:          getEnv("EMAILJS_PRIVATE_KEY", ""),
		EmailTimeout:               getEnvDuration("EMAIL_TIMEOUT", 15*time.Second),
		NotificationWorkers:        getEnvInt("NOTIFICATION_WORKERS", 2),
		NotificationQueueSize:      getEnvInt("NOTIFICATION_QUEUE_SIZE", 64),
		NotificationEnqueueTimeout: getEnvDuration("NOTIFICATION_ENQUEUE_TIMEOUT", 2*time.Second),
		StorageDriver:              strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverLocal)),
		StorageDir:                 getEnv("STORAGE_DIR", "./uploads"),
		StorageBaseURL:             getEnv("STORAGE_BASE_URL", "http://localhost:"+port+"/files"),
		SupabaseURL:                getEnv("SUPABASE_URL", ""),
		SupabaseKey:                getEnv("SUPABASE_KEY", ""),
		SupabaseBucket:             getEnv("SUPABASE_BUCKET", "articles"),
		StorageTimeout:             getEnvDuration("STORAGE_TIMEOUT", time.Minute),
		StagesFile:                 getEnv("STAGES_FILE", ""),
		ReviewerTokens:             getEnv("REVIEWER_TOKENS", ""),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE is required")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: postgres, mongo, memory")
	}

	switch c.StorageDriver {
	case StorageDriverLocal:
		if c.StorageDir == "" {
			return fmt.Errorf("STORAGE_DIR is required")
		}
	case StorageDriverSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" || c.SupabaseBucket == "" {
			return fmt.Errorf("SUPABASE_URL, SUPABASE_KEY and SUPABASE_BUCKET are required")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: local, supabase")
	}

	if c.NotificationWorkers < 1 {
		return fmt.Errorf("NOTIFICATION_WORKERS must be at least 1")
	}
	if c.NotificationQueueSize < 1 {
		return fmt.Errorf("NOTIFICATION_QUEUE_SIZE must be at least 1")
	}
	if strings.TrimSpace(c.ReviewerTokens) == "" {
		return fmt.Errorf("REVIEWER_TOKENS is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
