package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration, read from the environment.
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	Port          string
	JWTSecret     string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the environment with development defaults.
func Load() *Config {
	return &Config{
		MongoURI:        getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnvOrDefault("MONGO_DATABASE", "solospark"),
		RedisAddr:       redisAddr(),
		Port:            getEnvOrDefault("PORT", "8080"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
		ReadTimeout:     secondsOrDefault("HTTP_READ_TIMEOUT", 15),
		WriteTimeout:    secondsOrDefault("HTTP_WRITE_TIMEOUT", 30),
		ShutdownTimeout: 30 * time.Second,
	}
}

func secondsOrDefault(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}

func redisAddr() string {
	addr := getEnvOrDefault("REDIS_URI", "localhost:6379")
	return strings.TrimPrefix(addr, "redis://")
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
