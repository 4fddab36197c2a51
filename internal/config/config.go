package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT sessions for the admin panel
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Admin
	AdminToken string

	// Object storage (S3 compatible)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	StoragePublicURL string
	UploadMaxBytes   int64

	// Optional infrastructure
	RedisURL     string
	KafkaBrokers []string
	KafkaTopic   string

	KafkaPublishTimeout time.Duration

	// Observability
	SentryDSN        string
	AppEnv           string
	LogRetentionDays int

	// Server
	Port                   string
	CORSOrigins            string
	RateLimitPerMinute     int
	ContactRateLimitPerMin int
}

var defaults = map[string]any{
	"DB_HOST":     "localhost",
	"DB_PORT":     "5432",
	"DB_USER":     "postgres",
	"DB_PASSWORD": "",
	"DB_NAME":     "consulting_cms",
	"DB_SSLMODE":  "disable",

	"JWT_SECRET":         "",
	"JWT_ACCESS_EXPIRY":  "15m",
	"JWT_REFRESH_EXPIRY": "168h",

	"ADMIN_TOKEN": "",

	"STORAGE_ENDPOINT":   "",
	"STORAGE_ACCESS_KEY": "",
	"STORAGE_SECRET_KEY": "",
	"STORAGE_BUCKET":     "site-media",
	"STORAGE_USE_SSL":    false,
	"STORAGE_PUBLIC_URL": "",
	"UPLOAD_MAX_BYTES":   10 * 1024 * 1024,

	"REDIS_URL":     "",
	"KAFKA_BROKERS": "",
	"KAFKA_TOPIC":   "site-events",

	"KAFKA_PUBLISH_TIMEOUT": "5s",

	"SENTRY_DSN":         "",
	"APP_ENV":            "development",
	"LOG_RETENTION_DAYS": 30,

	"PORT":                          "8080",
	"CORS_ORIGINS":                  "*",
	"RATE_LIMIT_PER_MINUTE":         120,
	"CONTACT_RATE_LIMIT_PER_MINUTE": 5,
}

// Load reads configuration from an optional .env file in the working directory,
// overridden by process environment variables.
func Load() *Config {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // optional

	v.AutomaticEnv()

	return &Config{
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTAccessExpiry:  durationOr(v, "JWT_ACCESS_EXPIRY", 15*time.Minute),
		JWTRefreshExpiry: durationOr(v, "JWT_REFRESH_EXPIRY", 168*time.Hour),

		AdminToken: v.GetString("ADMIN_TOKEN"),

		StorageEndpoint:  v.GetString("STORAGE_ENDPOINT"),
		StorageAccessKey: v.GetString("STORAGE_ACCESS_KEY"),
		StorageSecretKey: v.GetString("STORAGE_SECRET_KEY"),
		StorageBucket:    v.GetString("STORAGE_BUCKET"),
		StorageUseSSL:    v.GetBool("STORAGE_USE_SSL"),
		StoragePublicURL: v.GetString("STORAGE_PUBLIC_URL"),
		UploadMaxBytes:   v.GetInt64("UPLOAD_MAX_BYTES"),

		RedisURL:     v.GetString("REDIS_URL"),
		KafkaBrokers: parseCSV(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),

		KafkaPublishTimeout: durationOr(v, "KAFKA_PUBLISH_TIMEOUT", 5*time.Second),

		SentryDSN:        v.GetString("SENTRY_DSN"),
		AppEnv:           v.GetString("APP_ENV"),
		LogRetentionDays: v.GetInt("LOG_RETENTION_DAYS"),

		Port:                   v.GetString("PORT"),
		CORSOrigins:            v.GetString("CORS_ORIGINS"),
		RateLimitPerMinute:     v.GetInt("RATE_LIMIT_PER_MINUTE"),
		ContactRateLimitPerMin: v.GetInt("CONTACT_RATE_LIMIT_PER_MINUTE"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
