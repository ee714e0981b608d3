package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Config holds all runtime configuration, read from environment variables
// (optionally loaded from configs/.env by main).
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   []byte
	RedisURL    string
	UploadDir   string
	CORSOrigins []string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration with development defaults. JWT_SECRET is
// mandatory in release mode.
func Load() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			log.Fatal().Msg("JWT_SECRET is required in release mode")
		}
		secret = "default_super_secret_key" // development fallback only
	}

	dsn := "postgres://" + getenv("DB_USER", "postgres") +
		":" + getenv("DB_PASSWORD", "postgres") +
		"@" + getenv("DB_HOST", "localhost") +
		":" + getenv("DB_PORT", "5432") +
		"/" + getenv("DB_NAME", "inventario") +
		"?sslmode=" + getenv("DB_SSLMODE", "disable")

	origins := strings.Split(getenv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"), ",")

	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: dsn,
		JWTSecret:   []byte(secret),
		RedisURL:    getenv("REDIS_URL", "redis://localhost:6379/0"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		CORSOrigins: origins,
	}
}
