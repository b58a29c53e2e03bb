package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"book-catalog/internal/domains/author"
)

// authorRepository implements author.Repository on top of the in-memory DB.
type authorRepository struct {
	db *DB
}

func (r *authorRepository) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now().UTC()
	created := author.Author{
		ID:        NewID(),
		Name:      a.Name,
		BookIDs:   []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.authors.Insert(created); err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	out := created
	out.BookIDs = cloneIDs(created.BookIDs)
	return &out, nil
}

func (r *authorRepository) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, err := r.db.authors.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", author.ErrAuthorNotFound, id)
		}
		return nil, err
	}

	out := a
	out.BookIDs = cloneIDs(a.BookIDs)
	return &out, nil
}

func (r *authorRepository) GetAll(_ context.Context, filter author.AuthorFilter) ([]author.Author, int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var predicate func(author.Author) bool
	if filter.Search != "" {
		predicate = func(a author.Author) bool {
			return strings.Contains(a.Name, filter.Search)
		}
	}

	authors, total, err := r.db.authors.List(predicate, filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]author.Author, len(authors))
	for i, a := range authors {
		out[i] = a
		out[i].BookIDs = cloneIDs(a.BookIDs)
	}
	return out, total, nil
}

func (r *authorRepository) Update(_ context.Context, id uuid.UUID, name string) (*author.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	updated, err := r.db.authors.Update(id, func(a author.Author) author.Author {
		a.Name = name
		a.UpdatedAt = time.Now().UTC()
		return a
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", author.ErrAuthorNotFound, id)
		}
		return nil, err
	}

	out := updated
	out.BookIDs = cloneIDs(updated.BookIDs)
	return &out, nil
}

func (r *authorRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	a, err := r.db.authors.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s", author.ErrAuthorNotFound, id)
		}
		return err
	}

	// The referential check and the delete share one write lock, so a
	// concurrent book create cannot slip a link in between.
	if a.HasBooks() {
		return fmt.Errorf("%w: author %s is referenced by %d book(s)", author.ErrAuthorHasBooks, id, len(a.BookIDs))
	}

	return r.db.authors.Delete(id)
}
