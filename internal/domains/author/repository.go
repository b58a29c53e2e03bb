package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations
// This abstraction allows:
// 1. Easy testing via mocking
// 2. Swapping store implementations
// 3. Clear separation of concerns
type Repository interface {
	// Create inserts a new author
	// Returns: created author with generated ID, empty BookIDs, timestamps
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves author by UUID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves paginated list of authors in insertion order
	// Returns: authors slice + total match count (pre-slice) for pagination
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int, error)

	// Update replaces the author's name; BookIDs is never touched here
	// Returns: ErrAuthorNotFound if not exists
	Update(ctx context.Context, id uuid.UUID, name string) (*Author, error)

	// Delete removes author by ID
	// Returns: ErrAuthorNotFound if not exists,
	// ErrAuthorHasBooks if any book still references the author
	Delete(ctx context.Context, id uuid.UUID) error
}
