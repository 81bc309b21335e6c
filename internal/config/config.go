package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default allowed origins for development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Config carries all runtime settings. It is built once at startup and passed
// to the components that need it; nothing reads the environment after Load.
type Config struct {
	Port             string
	DatabaseDSN      string
	JWTSecret        string
	TokenTTL         time.Duration
	EnforceOwnership bool
	AllowedOrigins   []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "3000"),
		DatabaseDSN:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenTTL:         time.Hour,
		EnforceOwnership: true,
		AllowedOrigins:   allowedOrigins(),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = parsed
	}

	if enforce := os.Getenv("ENFORCE_OWNERSHIP"); enforce != "" {
		parsed, err := strconv.ParseBool(enforce)
		if err != nil {
			return nil, fmt.Errorf("invalid ENFORCE_OWNERSHIP %q: %w", enforce, err)
		}
		cfg.EnforceOwnership = parsed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
