package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no book matches the requested id.
var ErrNotFound = errors.New("book not found")

// Valid values for a book's list type.
const (
	ListTypeOwned = "owned"
	ListTypeWant  = "want"
)

// Book represents one catalog entry, either owned or on the wish list.
// Optional fields are pointers so an omitted field is stored as NULL and
// serialized as JSON null, while a present zero value (e.g. yearPublished 0)
// stays a value.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         *string   `json:"genre"`
	YearPublished *int      `json:"yearPublished"`
	Rating        *int      `json:"rating"`
	Notes         *string   `json:"notes"`
	ListType      string    `json:"listType"`
	DateAdded     time.Time `json:"dateAdded"`
}
