package book

import (
	"errors"
	"net/http"
)

var (
	// Validation Errors
	ErrInvalidTitle = errors.New("book title is invalid")
	ErrTitleTooLong = errors.New("book title exceeds maximum length")
	ErrNoAuthors    = errors.New("book must have at least one author")

	// Business Rule Errors
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("referenced author not found")
)

var bookErrorMap = []struct {
	Err    error
	Status int
	Code   string
}{
	{ErrBookNotFound, http.StatusNotFound, "BOOK_NOT_FOUND"},
	// A missing author reference is a client mistake in the payload,
	// not a missing book resource.
	{ErrAuthorNotFound, http.StatusBadRequest, "AUTHOR_NOT_FOUND"},
	{ErrInvalidTitle, http.StatusBadRequest, "INVALID_TITLE"},
	{ErrTitleTooLong, http.StatusBadRequest, "INVALID_TITLE"},
	{ErrNoAuthors, http.StatusBadRequest, "NO_AUTHORS"},
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	for _, e := range bookErrorMap {
		if errors.Is(err, e.Err) {
			return e.Code
		}
	}
	return "INTERNAL_ERROR"
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	for _, e := range bookErrorMap {
		if errors.Is(err, e.Err) {
			return e.Status
		}
	}
	return http.StatusInternalServerError
}
