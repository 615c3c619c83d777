package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	ServerPort  string
	GinMode     string
	AuthSecret  string
	LogFile     string
	LogToStdout bool
}

func Load() *Config {
	// A missing .env file is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	return &Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "gigconnect"),
		DBPassword:  getEnv("DB_PASSWORD", "gigconnect"),
		DBName:      getEnv("DB_NAME", "gigconnect"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		AuthSecret:  getEnv("AUTH_TOKEN_SECRET", "dev-only-secret-change-me"),
		LogFile:     getEnv("LOG_FILE", "logs/api.log"),
		LogToStdout: getEnv("LOG_TO_STDOUT", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
