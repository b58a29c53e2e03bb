package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"book-catalog/internal/shared/response"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title     string      `json:"title"`
	AuthorIDs []uuid.UUID `json:"author_ids"`
}

// Validate validates CreateBookRequest
func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(MinTitleLength, MaxTitleLength)),
		validation.Field(&req.AuthorIDs, validation.Required, validation.Length(1, 0)),
	)
}

// UpdateBookRequest - PUT /v1/books/:id
// Replaces both the title and the full author_ids list.
type UpdateBookRequest struct {
	Title     string      `json:"title"`
	AuthorIDs []uuid.UUID `json:"author_ids"`
}

// Validate validates UpdateBookRequest
func (req UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(MinTitleLength, MaxTitleLength)),
		validation.Field(&req.AuthorIDs, validation.Required, validation.Length(1, 0)),
	)
}

// BookResponse - Book information returned by the API
type BookResponse struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	AuthorIDs []uuid.UUID `json:"author_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// BookListResponse - Paginated list response
type BookListResponse struct {
	Data []BookResponse `json:"data"`
	Meta response.Meta  `json:"meta"`
}

// BookFilter - Query parameters for list/search
// Search and AuthorID compose with logical AND.
type BookFilter struct {
	Search   string     `form:"search"` // Case-sensitive substring match on title
	AuthorID *uuid.UUID `form:"author_id"`
	Limit    int        `form:"limit"`
	Offset   int        `form:"offset"`
}

// ToResponse converts Book entity to BookResponse DTO
func (b Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorIDs: b.AuthorIDs,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
