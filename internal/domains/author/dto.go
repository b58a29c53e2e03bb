package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"book-catalog/internal/shared/response"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// Validate validates CreateAuthorRequest
func (req CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(MinNameLength, MaxNameLength)),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Name is the only mutable field; book_ids is derived and never accepted here.
type UpdateAuthorRequest struct {
	Name string `json:"name"`
}

// Validate validates UpdateAuthorRequest
func (req UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(MinNameLength, MaxNameLength)),
	)
}

// AuthorResponse - Author information returned by the API
type AuthorResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	BookIDs   []uuid.UUID `json:"book_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// AuthorListResponse - Paginated list response
type AuthorListResponse struct {
	Data []AuthorResponse `json:"data"`
	Meta response.Meta    `json:"meta"`
}

// AuthorFilter - Query parameters for list/search
type AuthorFilter struct {
	Search string `form:"search"` // Case-sensitive substring match on name
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() *AuthorResponse {
	bookIDs := a.BookIDs
	if bookIDs == nil {
		bookIDs = []uuid.UUID{}
	}
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BookIDs:   bookIDs,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
