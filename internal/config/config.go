package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURI   string
	Port          string
	AIProvider    string
	AIAPIKey      string
	AIBaseURL     string
	AIModel       string
	AIVisionModel string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		DatabaseURI:   os.Getenv("DATABASE_URI"),
		Port:          getEnvOrDefault("PORT", "8080"),
		AIProvider:    getEnvOrDefault("AI_PROVIDER", "openai"),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIBaseURL:     os.Getenv("AI_BASE_URL"),
		AIModel:       os.Getenv("AI_MODEL"),
		AIVisionModel: os.Getenv("AI_VISION_MODEL"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
