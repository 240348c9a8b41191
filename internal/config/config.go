package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all service configuration values. Every mail credential is
// optional: an empty value disables the corresponding delivery mechanism.
type Config struct {
	HTTPPort  string
	DBDSN     string
	JWTSecret string
	Env       string // "dev" | "staging" | "prod"

	UploadDir string

	// Mail
	MailFrom             string
	MailDefaultRecipient string
	ResendAPIKey         string
	SMTPHost             string
	SMTPPort             int
	SMTPUser             string
	SMTPPass             string

	// Search
	ElasticsearchURL    string
	ElasticsearchAPIKey string

	// AI
	OpenAIAPIKey string
}

// MustLoad loads configuration from environment variables.
// If a required variable is missing, the service exits immediately.
func MustLoad() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:  getEnv("PORT", "8080"),
		DBDSN:     getEnv("DB_DSN", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
		Env:       getEnv("APP_ENV", "dev"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		MailFrom:             getEnv("MAIL_FROM", "no-reply@example.com"),
		MailDefaultRecipient: getEnv("MAIL_DEFAULT_RECIPIENT", ""),
		ResendAPIKey:         getEnv("RESEND_API_KEY", ""),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             getEnvInt("SMTP_PORT", 587),
		SMTPUser:             getEnv("SMTP_USER", ""),
		SMTPPass:             getEnv("SMTP_PASS", ""),

		ElasticsearchURL:    getEnv("ELASTICSEARCH_URL", ""),
		ElasticsearchAPIKey: getEnv("ELASTICSEARCH_API_KEY", ""),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}

	// Fail fast if required vars are missing
	if cfg.DBDSN == "" {
		log.Fatal("missing required env: DB_DSN")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("missing required env: JWT_SECRET")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid value for %s: %q", key, val)
	}
	return n
}
