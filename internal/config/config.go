// Package config loads runtime settings from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the HTTP API.
type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string
	Domain       string
	MaxBodyBytes int64
	ExcerptWords int
	FetchTimeout time.Duration
	CORSOrigins  []string
}

// Load reads .env (if any) and the environment, falling back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
		Domain:       getEnv("DESCRIPTION_DOMAIN", "job"),
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		ExcerptWords: getEnvInt("EXCERPT_WORDS", 40),
		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 30*time.Second),
		CORSOrigins:  getEnvList("CORS_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
