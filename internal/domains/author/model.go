package author

import (
	"time"

	"github.com/google/uuid"
)

// Constants for validation
const (
	MinNameLength = 1
	MaxNameLength = 100
)

// Author represents the core Author entity
// This is the domain model, independent of transport concerns
type Author struct {
	// Identity - UUID, immutable after creation
	ID uuid.UUID `json:"id"`

	// Basic Information
	Name string `json:"name"` // Required, 1-100 chars

	// Derived association data
	// BookIDs lists every book currently referencing this author,
	// in link order. Maintained by the store, never settable by clients.
	BookIDs []uuid.UUID `json:"book_ids"`

	// Audit timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasBooks reports whether any book still references this author.
func (a *Author) HasBooks() bool {
	return len(a.BookIDs) > 0
}
