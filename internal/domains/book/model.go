package book

import (
	"time"

	"github.com/google/uuid"
)

// Constants for validation
const (
	MinTitleLength = 1
	MaxTitleLength = 200
)

// Book represents the core Book entity
type Book struct {
	// Identity - UUID, immutable after creation
	ID uuid.UUID `json:"id"`

	// Basic Information
	Title string `json:"title"` // Required, 1-200 chars

	// AuthorIDs is the authoritative side of the author<->book relation.
	// Always non-empty; every id must reference an existing author at
	// the time it is set.
	AuthorIDs []uuid.UUID `json:"author_ids"`

	// Audit timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAuthor reports whether the book references the given author.
func (b *Book) HasAuthor(authorID uuid.UUID) bool {
	for _, id := range b.AuthorIDs {
		if id == authorID {
			return true
		}
	}
	return false
}
