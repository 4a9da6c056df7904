package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL string

	ServerPort string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionCookie string
	SessionTTL    time.Duration
	CookieSecure  bool

	RequestTimeout time.Duration
}

func Load() *Config {
	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),

		ServerPort: getEnv("SERVER_PORT", "3000"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SessionCookie: getEnv("SESSION_COOKIE", "barber_session"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",

		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
