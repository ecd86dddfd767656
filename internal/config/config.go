package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string
	UploadDir   string

	// Bootstrap admin upserted at startup; login is disabled for the admin
	// panel when these are left empty.
	AdminEmail    string
	AdminPassword string

	// Where GET /api/login sends browsers to start a session.
	LoginRedirectURL string
}

// Load reads configuration from the environment, preferring a local .env file
// when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		PostgresURL:      getEnv("POSTGRES_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		AdminEmail:       getEnv("ADMIN_EMAIL", ""),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		LoginRedirectURL: getEnv("LOGIN_REDIRECT_URL", "/login"),
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set; sessions will not survive restarts")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
