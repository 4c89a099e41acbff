package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide server settings. It is read once at startup
// and never mutated afterwards.
type Config struct {
	Port        string
	CORSOrigins string
	Environment string

	// MaxTokens bounds the delegated completion length.
	MaxTokens int
}

// IsDev reports whether the process runs in development mode.
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// Load reads configuration from the environment, optionally seeding it
// from a .env file first. A missing .env file is not an error — system
// environment variables are used as-is.
func Load(envFile string) *Config {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		Environment: getEnv("ENVIRONMENT", "production"),
		MaxTokens:   getEnvInt("FORMCHECK_MAX_TOKENS", 1024),
	}
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}
