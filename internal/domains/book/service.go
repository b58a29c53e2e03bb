package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for Book domain
type Service interface {
	// Create creates a new book
	// Business rules:
	// - Title must be non-empty and <= 200 chars (after trimming)
	// - AuthorIDs must be non-empty; duplicates are collapsed keeping
	//   first-occurrence order
	// - Every author id must reference an existing author
	// Errors: ErrInvalidTitle, ErrTitleTooLong, ErrNoAuthors, ErrAuthorNotFound
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID retrieves book by UUID
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll retrieves paginated list of books with filtering
	// Business rules:
	// - Default limit 100, max 1000
	// - Search is a case-sensitive substring match on title
	// - AuthorID restricts to books referencing that author
	// - Filters compose with logical AND
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int, error)

	// Update replaces title and the full author_ids list (same validation
	// as Create). No mutation happens if any new author id is invalid.
	// Errors: ErrBookNotFound, ErrAuthorNotFound, validation errors
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// Delete removes a book, unlinking it from all referencing authors
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
