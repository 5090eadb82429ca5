package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all service configuration. DatabaseURL, RedisAddr and
// Port are required; missing any of them is fatal at startup, the
// process never starts degraded.
type Config struct {
	Env           string
	Port          int
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int
	JWTSecret     string
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("APP_ENV", "local"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPoolSize: getEnvInt("REDIS_POOL_SIZE", 10),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	for name, value := range map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"REDIS_ADDR":   cfg.RedisAddr,
		"PORT":         os.Getenv("PORT"),
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", name)
		}
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
