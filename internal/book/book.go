package book

import "errors"

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidArgument is returned when a write is missing required fields.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Book represents a book entity.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Changes holds the fields an update overwrites. Nil fields are left as they are.
type Changes struct {
	Title  *string
	Author *string
}

// DefaultSeed returns the records the registry starts with.
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Title: "The Hobbit", Author: "J.R.R. Tolkien"},
		{ID: 2, Title: "1984", Author: "George Orwell"},
	}
}
