package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      string
	DBURL     string
	RedisAddr string
	RedisPass string

	SessionSecret           string
	SessionTTLMin           int
	PersistentSessionTTLMin int

	LoginMaxAttempts   int
	LoginWindowMin     int
	LockoutMaxFailures int
	LockoutMin         int

	TwoFactorTTLMin    int
	ResetTokenTTLMin   int
	TrustedDeviceDays  int
	CleanupIntervalMin int

	EmailProvider  string
	SendGridAPIKey string
	SenderEmail    string
	SenderName     string
}

// Load reads configuration from the environment, after overlaying the
// optional config/.env.<env> file. Required variables are fatal when
// missing.
func Load() *Config {
	env := getEnv("ENV", "development")

	// Best effort: a missing env file just means plain env vars.
	_ = godotenv.Load(filepath.Join("config", ".env."+env))

	return &Config{
		Env:       env,
		Port:      getEnv("PORT", "8080"),
		DBURL:     mustGetEnv("DB_URL"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),

		SessionSecret:           mustGetEnv("SESSION_SECRET"),
		SessionTTLMin:           getEnvAsInt("SESSION_TTL_MIN", 720),
		PersistentSessionTTLMin: getEnvAsInt("PERSISTENT_SESSION_TTL_MIN", 10080),

		LoginMaxAttempts:   getEnvAsInt("LOGIN_MAX_ATTEMPTS", 10),
		LoginWindowMin:     getEnvAsInt("LOGIN_WINDOW_MIN", 10),
		LockoutMaxFailures: getEnvAsInt("LOCKOUT_MAX_FAILURES", 5),
		LockoutMin:         getEnvAsInt("LOCKOUT_MIN", 15),

		TwoFactorTTLMin:    getEnvAsInt("TWO_FACTOR_TTL_MIN", 10),
		ResetTokenTTLMin:   getEnvAsInt("RESET_TOKEN_TTL_MIN", 30),
		TrustedDeviceDays:  getEnvAsInt("TRUSTED_DEVICE_DAYS", 30),
		CleanupIntervalMin: getEnvAsInt("CLEANUP_INTERVAL_MIN", 60),

		EmailProvider:  getEnv("EMAIL_PROVIDER", "console"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "no-reply@localhost"),
		SenderName:     getEnv("SENDER_NAME", "Identity Service"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	log.Fatalf("Missing required environment variable: %s", key)

	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}

	return val
}
