// Package config loads the service configuration from the environment,
// optionally seeded by a .env file.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every tunable the binaries need.
type Config struct {
	ServerAddr    string
	DatabaseDSN   string
	KafkaBrokers  []string
	RedisAddr     string
	CityLookupURL string
}

// Load reads .env when present and falls back to defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=viajabus password=viajabus dbname=booking port=5432 sslmode=disable TimeZone=UTC"),
		KafkaBrokers:  strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		CityLookupURL: getEnv("CITY_LOOKUP_URL", "https://servicodados.ibge.gov.br/api/v1/localidades"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
