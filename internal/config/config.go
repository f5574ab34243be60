package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the server settings read once at startup. JWT_SECRET is
// deliberately absent: token code reads it from the environment on each use.
type Config struct {
	Addr        string
	DBUrl       string
	RedisURL    string
	PostsOnPage int
	CacheTTL    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Addr:        getEnv("SERVER_ADDR", ":8080"),
		DBUrl:       os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		PostsOnPage: getEnvInt("POSTS_ON_PAGE", 10),
		CacheTTL:    time.Duration(getEnvInt("CACHE_TTL_SECONDS", 20)) * time.Second,
	}
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
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
