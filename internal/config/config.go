package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	JWTIssuer     string
	JWTSecret     string
	TokenTTLHours int

	// TokenFile is where the session credential token is persisted between
	// runs. Presence of the file is the sole session-resume signal.
	TokenFile string

	// MockLatencyMS adds an artificial delay to every backend call so the
	// storefront behaves like it talks to a remote service. Zero disables it.
	MockLatencyMS int
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		JWTIssuer:     get("JWT_ISSUER", "rimss"),
		JWTSecret:     get("JWT_SECRET", "dev-secret"),
		TokenTTLHours: getInt("TOKEN_TTL_HOURS", 24),

		TokenFile: get("TOKEN_FILE", ".rimss-token"),

		MockLatencyMS: getInt("MOCK_LATENCY_MS", 0),
	}
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c Config) MockLatency() time.Duration {
	return time.Duration(c.MockLatencyMS) * time.Millisecond
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
