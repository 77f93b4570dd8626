package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type config struct {
	port           string
	dsn            string
	corsOrigins    []string
	requestTimeout time.Duration
}

func loadConfig() config {
	cfg := config{
		port:           getEnv("API_PORT", "3001"),
		dsn:            dsnFromEnv(),
		requestTimeout: 5 * time.Second,
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.corsOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.requestTimeout = d
		}
	}
	return cfg
}

// dsnFromEnv folds the discrete DB_* variables into a pgx connection URL.
func dsnFromEnv() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	database := getEnv("DB_DATABASE", "bookshelf")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, database, sslmode)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
