package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// maxPoolConns bounds the shared connection pool; excess acquirers wait on
// their request context instead of failing outright.
const maxPoolConns = 10

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := loadConfig()

	dbPool := mustOpenDB(cfg.dsn)
	defer dbPool.Close()

	if err := book.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Fatalf("cannot ensure books table: %v", err)
	}

	bookRepository := book.NewPostgresRepo(dbPool, cfg.requestTimeout)
	bookHandler := book.NewHTTPHandler(bookRepository)

	httpServer := &http.Server{
		Addr:         ":" + cfg.port,
		Handler:      newRouter(bookHandler, cfg.corsOrigins),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Bookshelf API listening on port %s", cfg.port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func newRouter(bookHandler *book.HTTPHandler, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// {$} keeps the liveness route from shadowing unknown paths.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Bookshelf API is running!"))
	})

	mux.HandleFunc("GET /api/books", bookHandler.List)
	mux.HandleFunc("POST /api/books", bookHandler.Create)
	mux.HandleFunc("GET /api/books/{id}", bookHandler.Get)
	mux.HandleFunc("PUT /api/books/{id}", bookHandler.Update)
	mux.HandleFunc("DELETE /api/books/{id}", bookHandler.Delete)

	var handler http.Handler = mux
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	return handler
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("invalid database config (%s): %v", redactDSN(dsn), err)
	}
	poolCfg.MaxConns = maxPoolConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}
