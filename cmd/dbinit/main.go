// Command dbinit creates the books table if it does not already exist.
// Deployments can run it as a standalone step; the API server also ensures
// the schema at startup, so either path works.
package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"bookshelf/internal/book"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(getEnv("DB_USER", "postgres")),
		url.QueryEscape(os.Getenv("DB_PASSWORD")),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_DATABASE", "bookshelf"),
		getEnv("DB_SSLMODE", "disable"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	defer pool.Close()

	if err := book.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("cannot initialize schema: %v", err)
	}
	fmt.Println("Table 'books' checked/created successfully.")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
