package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	DBPath         string
	LogLevel       string
	MaxUploadBytes int64
	TemplateDir    string
	StaticDir      string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:           envOr("ADDR", ":8080"),
		DBPath:         envOr("DB_PATH", ":memory:"),
		LogLevel:       envOr("LOG_LEVEL", "INFO"),
		MaxUploadBytes: envInt64Or("MAX_UPLOAD_BYTES", 4<<20),
		TemplateDir:    envOr("TEMPLATE_DIR", "web/templates"),
		StaticDir:      envOr("STATIC_DIR", "web/static"),
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt64Or(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
