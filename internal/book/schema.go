package book

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// id is TEXT rather than the uuid type: lookups take the id as an opaque
// string, and a malformed id should read as "no such row" instead of a
// cast error.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS books (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    author         TEXT NOT NULL,
    genre          TEXT,
    year_published INTEGER,
    rating         INTEGER,
    notes          TEXT,
    list_type      TEXT NOT NULL CHECK (list_type IN ('owned', 'want')),
    date_added     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the books table if it does not already exist.
// Idempotent; safe to run on every deployment.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, createTableSQL)
	return err
}
