package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for Author domain
type Service interface {
	// Create creates a new author
	// Business rules:
	// - Name must be non-empty and <= 100 chars (after trimming)
	// Returns: created author with generated ID and empty BookIDs
	// Errors: ErrInvalidName, ErrNameTooLong
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by UUID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves paginated list of authors with filtering
	// Business rules:
	// - Default limit 100, max 1000
	// - Search is a case-sensitive substring match on name
	// - Results in insertion order
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int, error)

	// Update replaces the author's name (same validation as Create)
	// BookIDs is derived data and is never modified here.
	// Errors: ErrAuthorNotFound, ErrInvalidName, ErrNameTooLong
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author
	// Business rules:
	// - Cannot delete while any book references the author
	// Errors: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID) error
}
