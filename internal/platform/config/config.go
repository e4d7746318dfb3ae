package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	DBMaxConns        int32
	Port              string
	IsProduction      bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Administrator ensured at startup. Only this user has admin rights.
	DefaultAdminUser string
	DefaultAdminPIN  string

	// LoginRateLimit uses the limiter format, e.g. "5-M" for five per minute.
	LoginRateLimit string
	// RedisURL switches the login limiter to a shared Redis store when set.
	RedisURL string

	CORSAllowedOrigins []string

	// Claim notifications; disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string

	PosthogAPIKey   string
	PosthogEndpoint string

	// ReportConcurrency bounds the per-user aggregates run in parallel for reports.
	ReportConcurrency int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", insecureJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "cashclaim")
	viper.SetDefault("DEFAULT_ADMIN_USER", "Admin")
	viper.SetDefault("DEFAULT_ADMIN_PIN", "1234")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "cashclaim.events")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("REPORT_CONCURRENCY", 4)

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == insecureJWTSecret {
		cfg.JWTSecret = insecureJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "12h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		slog.Warn("Invalid value for JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.String("default", jwtExpiryDuration.String()))
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DefaultAdminUser = strings.TrimSpace(viper.GetString("DEFAULT_ADMIN_USER"))
	if cfg.DefaultAdminUser == "" {
		cfg.DefaultAdminUser = "Admin"
	}
	cfg.DefaultAdminPIN = viper.GetString("DEFAULT_ADMIN_PIN")
	if cfg.IsProduction && cfg.DefaultAdminPIN == "1234" {
		slog.Warn("DEFAULT_ADMIN_PIN is the factory default. Change it after first login.")
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.ReportConcurrency = viper.GetInt("REPORT_CONCURRENCY")
	if cfg.ReportConcurrency < 1 {
		cfg.ReportConcurrency = 1
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
