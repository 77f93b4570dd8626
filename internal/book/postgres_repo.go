package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, author, genre, year_published, rating, notes, list_type, date_added
		FROM books
		ORDER BY date_added DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// An empty shelf must serialize as [], not null.
	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished,
			&b.Rating, &b.Notes, &b.ListType, &b.DateAdded,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, title, author, genre, year_published, rating, notes, list_type, date_added
		FROM books
		WHERE id = $1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished,
		&b.Rating, &b.Notes, &b.ListType, &b.DateAdded,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (id, title, author, genre, year_published, rating, notes, list_type, date_added)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		b.ID, b.Title, b.Author, b.Genre, b.YearPublished,
		b.Rating, b.Notes, b.ListType, b.DateAdded,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insert book %s: no rows affected", b.ID)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, b *Book) (Book, error) {
	// Full replace of all mutable fields; id and date_added are never touched.
	const query = `
		UPDATE books
		SET title = $1, author = $2, genre = $3, year_published = $4, rating = $5, notes = $6, list_type = $7
		WHERE id = $8
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		b.Title, b.Author, b.Genre, b.YearPublished, b.Rating, b.Notes, b.ListType, id,
	)
	if err != nil {
		return Book{}, fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Book{}, ErrNotFound
	}

	updated, err := r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Row vanished between the update and the re-read (concurrent
			// delete). Not a not-found for the caller.
			return Book{}, fmt.Errorf("book %s missing after update", id)
		}
		return Book{}, err
	}
	return updated, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
