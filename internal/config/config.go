package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config regroupe la configuration de l'application, chargée depuis
// l'environnement (.env en développement).
type Config struct {
	Port string

	// Backend Zenith (le collaborateur distant)
	APIBaseURL string
	APIToken   string
	APITimeout time.Duration
	MaxRetries int

	// Comportement du moteur
	FeaturedPolicy     string // random, first
	LeaderboardPerPage int
	ActivityWindowDays int
}

// LoadConfig charge la configuration depuis l'environnement.
func LoadConfig() (*Config, error) {
	// .env est optionnel: en production tout vient de l'environnement
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		APIBaseURL:         getEnv("ZENITH_API_URL", "http://localhost:3000/api/v1"),
		APIToken:           os.Getenv("ZENITH_API_TOKEN"),
		APITimeout:         getEnvDuration("ZENITH_API_TIMEOUT", 15*time.Second),
		MaxRetries:         getEnvInt("ZENITH_API_MAX_RETRIES", 3),
		FeaturedPolicy:     getEnv("FEATURED_POLICY", "random"),
		LeaderboardPerPage: getEnvInt("LEADERBOARD_PER_PAGE", 10),
		ActivityWindowDays: getEnvInt("ACTIVITY_WINDOW_DAYS", 365),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("ZENITH_API_URL must not be empty")
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("ZENITH_API_MAX_RETRIES must be >= 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
