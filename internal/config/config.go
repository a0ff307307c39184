package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port              string
	DatabasePath      string
	ModelPath         string
	FeaturesPath      string
	Env               string
	HighRiskThreshold float64
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "database/hr.db")
	cfg.ModelPath = getEnv("MODEL_PATH", "models/hr_attrition_model.json")
	cfg.FeaturesPath = getEnv("FEATURES_PATH", "models/feature_columns.json")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.HighRiskThreshold = ParseFloat("HIGH_RISK_THRESHOLD", 0.7)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

// ParseFloat reads an env var as float64 with default.
func ParseFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("invalid float for %s: %s", key, v)
			return def
		}
		return f
	}
	return def
}
