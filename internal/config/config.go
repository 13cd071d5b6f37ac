// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	JWTSecretKey  string
	AllowedOrigin string
	// Optional: when set, replies come from a real LLM instead of the
	// built-in rule provider.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	Environment   string
}

// Load reads configuration from environment variables or a .env file.
// Every value has a local-development default.
func Load() *Config {
	env := os.Getenv("GO_ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "foodmate.db"),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", "foodmate-dev-secret"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
		Environment:   env,
	}

	// The dev secret must never sign production tokens.
	if strings.ToLower(env) == "production" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			log.Fatal("Missing required production environment variable: JWT_SECRET_KEY")
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
