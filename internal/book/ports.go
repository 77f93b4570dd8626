package book

import (
	"context"
)

// Repository defines the contract for book storage.
type Repository interface {
	// List returns all books, newest first.
	List(ctx context.Context) ([]Book, error)
	// Get returns the book with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Book, error)
	// Create inserts a fully populated book.
	Create(ctx context.Context, b *Book) error
	// Update replaces all mutable fields of the book with the given id and
	// returns the resulting row. Returns ErrNotFound if no row matched.
	Update(ctx context.Context, id string, b *Book) (Book, error)
	// Delete removes the book with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
