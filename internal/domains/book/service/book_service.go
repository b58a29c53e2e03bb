package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"book-catalog/internal/domains/book"
)

// bookService implements book.Service
type bookService struct {
	repo book.Repository // Repository dependency (injected)
}

// NewBookService creates a new book service instance
func NewBookService(repo book.Repository) book.Service {
	return &bookService{
		repo: repo,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	title, err := sanitizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	authorIDs := dedupeIDs(req.AuthorIDs)
	if len(authorIDs) == 0 {
		return nil, book.ErrNoAuthors
	}

	created, err := s.repo.Create(ctx, &book.Book{
		Title:     title,
		AuthorIDs: authorIDs,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int, error) {
	// Defaults only; out-of-range values are rejected by the store.
	if filter.Limit == 0 {
		filter.Limit = 100
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	title, err := sanitizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	authorIDs := dedupeIDs(req.AuthorIDs)
	if len(authorIDs) == 0 {
		return nil, book.ErrNoAuthors
	}

	return s.repo.Update(ctx, id, title, authorIDs)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return book.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

// sanitizeTitle trims and validates a book title.
func sanitizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", book.ErrInvalidTitle
	}
	if utf8.RuneCountInString(title) > book.MaxTitleLength {
		return "", fmt.Errorf("%w: maximum %d characters", book.ErrTitleTooLong, book.MaxTitleLength)
	}
	return title, nil
}

// dedupeIDs collapses duplicate ids, keeping first-occurrence order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
