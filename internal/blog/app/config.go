package app

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/blog/pkg/cryptox"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	SecretKey       []byte        // HS256 signing secret (default: random per process)
	AccessTokenTTL  time.Duration // Access token lifetime (default: 30m)
	RefreshTokenTTL time.Duration // Refresh token lifetime and cookie max-age (default: 7d)
	ResetTokenTTL   time.Duration // Password reset token lifetime (default: 48h)

	DatabaseURL string // sqlite:///path, a bare file path, or postgres://... (default: sqlite:///./data/blog.db)
	PepperFile  string // Path to the password hashing pepper (default: ./data/pepper)
	RedisURL    string // Optional: enables the Redis revocation list

	GoogleClientID     string // Optional: enables Google sign-in
	GoogleClientSecret string
	GoogleRedirectURI  string // Default redirect for the consent URL

	CORSOrigins      []string // Allowed browser origins (default: http://localhost:3000)
	CookieSecure     bool     // Secure flag on the refresh cookie (default: true, false in dev when unset)
	ExposeResetToken bool     // Echo reset tokens in the reset-request response (default: true)

	ResendAPIKey string // Optional: selects the Resend mailer
	SMTPHost     string // Optional: selects the SMTP mailer
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	FromName     string
	AppURL       string // Base of reset links in mail (default: http://localhost:3000)

	SeedSampleData bool // Seed sample categories and posts into an empty store

	// secretGenerated records that SecretKey was not configured.
	secretGenerated bool
}

// LoadConfig reads the environment, after loading a .env file when one
// exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	env := getEnvOrDefault("ENV", "dev")
	cfg := Config{
		Env:                  env,
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		AccessTokenTTL:  time.Duration(getEnvIntOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenTTL: time.Duration(getEnvIntOrDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		ResetTokenTTL:   time.Duration(getEnvIntOrDefault("EMAIL_RESET_TOKEN_EXPIRE_HOURS", 48)) * time.Hour,

		DatabaseURL: getEnvOrDefault("DATABASE_URL", "sqlite:///./data/blog.db"),
		PepperFile:  getEnvOrDefault("PEPPER_FILE", "./data/pepper"),
		RedisURL:    os.Getenv("REDIS_URL"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  getEnvOrDefault("GOOGLE_REDIRECT_URI", "http://localhost:8000/api/auth/google/callback"),

		CORSOrigins:      splitList(getEnvOrDefault("BACKEND_CORS_ORIGINS", "http://localhost:3000")),
		CookieSecure:     getEnvBoolOrDefault("COOKIE_SECURE", env != "dev"),
		ExposeResetToken: getEnvBoolOrDefault("EXPOSE_RESET_TOKEN", true),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		SMTPHost:     os.Getenv("EMAIL_SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("EMAIL_SMTP_PORT", 587),
		SMTPUser:     os.Getenv("EMAIL_SMTP_USER"),
		SMTPPassword: os.Getenv("EMAIL_SMTP_PASSWORD"),
		FromEmail:    os.Getenv("EMAILS_FROM_EMAIL"),
		FromName:     os.Getenv("EMAILS_FROM_NAME"),
		AppURL:       getEnvOrDefault("APP_URL", "http://localhost:3000"),

		SeedSampleData: getEnvBoolOrDefault("SEED_SAMPLE_DATA", false),
	}

	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		cfg.SecretKey = []byte(secret)
	} else {
		// Sessions will not survive a restart
		secret, _ := cryptox.GenerateToken(cryptox.TokenSize256)
		cfg.SecretKey = []byte(secret)
		cfg.secretGenerated = true
	}

	return cfg
}

// warnings logs configuration that works but should not reach production.
func (cfg Config) warnings(logger *slog.Logger) {
	if cfg.secretGenerated {
		logger.Warn("SECRET_KEY not set, using a random key; sessions end on restart")
	}
	if !cfg.CookieSecure {
		logger.Warn("refresh cookie is sent without the Secure flag")
	}
	if cfg.ExposeResetToken && cfg.Env != "dev" {
		logger.Warn("password reset tokens are returned in API responses", "env", cfg.Env)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
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
