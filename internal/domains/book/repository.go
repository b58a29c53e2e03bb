package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Book data access operations
//
// Cross-entity effects (maintaining Author.BookIDs) happen inside the
// repository so that a book mutation and its author-side link updates are
// visible atomically, never half-applied.
type Repository interface {
	// Create inserts a new book and links it to every referenced author.
	// All author ids are verified first; on any missing id nothing is
	// written.
	// Errors: ErrAuthorNotFound (wrapping the offending id)
	Create(ctx context.Context, book *Book) (*Book, error)

	// GetByID retrieves book by UUID
	// Returns: ErrBookNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll retrieves paginated list of books in insertion order
	// Returns: books slice + total match count (pre-slice)
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int, error)

	// Update replaces title and the full author_ids list, relinking the
	// symmetric difference between old and new author sets. Validates
	// every new author id before mutating anything.
	// Errors: ErrBookNotFound, ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, title string, authorIDs []uuid.UUID) (*Book, error)

	// Delete removes the book after unlinking it from every referencing
	// author.
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
