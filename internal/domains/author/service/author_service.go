package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"book-catalog/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository // Repository dependency (injected)
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	name, err := sanitizeName(req.Name)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &author.Author{Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int, error) {
	// Defaults only; out-of-range values are rejected by the store.
	if filter.Limit == 0 {
		filter.Limit = 100
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	name, err := sanitizeName(req.Name)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, name)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return author.ErrAuthorNotFound
	}
	// The repository enforces the no-linked-books rule atomically with
	// the delete itself.
	return s.repo.Delete(ctx, id)
}

// sanitizeName trims and validates an author name.
func sanitizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", author.ErrInvalidName
	}
	if utf8.RuneCountInString(name) > author.MaxNameLength {
		return "", fmt.Errorf("%w: maximum %d characters", author.ErrNameTooLong, author.MaxNameLength)
	}
	return name, nil
}
