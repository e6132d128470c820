package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	AppPort   string
	AppURL    string
	JWTSecret string

	UploadDir string

	QueueSize    int
	QueueWorkers int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:   GetEnv("APP_PORT", "3333"),
		AppURL:    GetEnv("APP_URL", "http://localhost:3333"),
		JWTSecret: GetEnv("JWT_SECRET", ""),

		UploadDir: GetEnv("UPLOAD_DIR", "tmp/uploads"),

		QueueSize:    GetEnvAsInt("QUEUE_SIZE", 64),
		QueueWorkers: GetEnvAsInt("QUEUE_WORKERS", 2),

		SMTPHost: GetEnv("SMTP_HOST", "localhost"),
		SMTPPort: GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser: GetEnv("SMTP_USER", ""),
		SMTPPass: GetEnv("SMTP_PASS", ""),
		MailFrom: GetEnv("MAIL_FROM", "Equipe Agenda <noreply@agenda.link>"),
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
