package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	AccessTokenTTL time.Duration
}

// Load reads configuration once at process start. The JWT secret is
// process-wide and never rotated within a run.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessTTL := 30 * time.Minute
	if exp := os.Getenv("ACCESS_TOKEN_TTL"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessTTL = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseDSN:    getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=calendar port=5432 sslmode=disable"),
		JWTSecret:      getEnv("JWT_SECRET", "d01e3f9110d397d00cb5ffc2cd498180a16c3999191a032ef404424daec9ada4"),
		AccessTokenTTL: accessTTL,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
