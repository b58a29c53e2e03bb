package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"book-catalog/internal/domains/book"
)

// bookRepository implements book.Repository on top of the in-memory DB.
// Every mutation also maintains the author-side of the association under
// the same write lock.
type bookRepository struct {
	db *DB
}

func (r *bookRepository) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// Validate every reference before touching any state.
	if err := r.requireAuthors(b.AuthorIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := book.Book{
		ID:        NewID(),
		Title:     b.Title,
		AuthorIDs: cloneIDs(b.AuthorIDs),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.books.Insert(created); err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}
	for _, authorID := range created.AuthorIDs {
		r.db.link(authorID, created.ID)
	}

	out := created
	out.AuthorIDs = cloneIDs(created.AuthorIDs)
	return &out, nil
}

func (r *bookRepository) GetByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	b, err := r.db.books.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", book.ErrBookNotFound, id)
		}
		return nil, err
	}

	out := b
	out.AuthorIDs = cloneIDs(b.AuthorIDs)
	return &out, nil
}

func (r *bookRepository) GetAll(_ context.Context, filter book.BookFilter) ([]book.Book, int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var predicate func(book.Book) bool
	if filter.Search != "" || filter.AuthorID != nil {
		predicate = func(b book.Book) bool {
			if filter.Search != "" && !strings.Contains(b.Title, filter.Search) {
				return false
			}
			if filter.AuthorID != nil && !b.HasAuthor(*filter.AuthorID) {
				return false
			}
			return true
		}
	}

	books, total, err := r.db.books.List(predicate, filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]book.Book, len(books))
	for i, b := range books {
		out[i] = b
		out[i].AuthorIDs = cloneIDs(b.AuthorIDs)
	}
	return out, total, nil
}

func (r *bookRepository) Update(_ context.Context, id uuid.UUID, title string, authorIDs []uuid.UUID) (*book.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, err := r.db.books.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", book.ErrBookNotFound, id)
		}
		return nil, err
	}

	// Validate the whole new author set before mutating anything, so a
	// bad reference leaves book and index untouched.
	if err := r.requireAuthors(authorIDs); err != nil {
		return nil, err
	}

	newIDs := cloneIDs(authorIDs)
	updated, err := r.db.books.Update(id, func(b book.Book) book.Book {
		b.Title = title
		b.AuthorIDs = newIDs
		b.UpdatedAt = time.Now().UTC()
		return b
	})
	if err != nil {
		return nil, err
	}

	// Relink the symmetric difference between old and new author sets.
	for _, old := range current.AuthorIDs {
		if !containsID(newIDs, old) {
			r.db.unlink(old, id)
		}
	}
	for _, added := range newIDs {
		if !containsID(current.AuthorIDs, added) {
			r.db.link(added, id)
		}
	}

	out := updated
	out.AuthorIDs = cloneIDs(updated.AuthorIDs)
	return &out, nil
}

func (r *bookRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b, err := r.db.books.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s", book.ErrBookNotFound, id)
		}
		return err
	}

	for _, authorID := range b.AuthorIDs {
		r.db.unlink(authorID, id)
	}

	return r.db.books.Delete(id)
}

// requireAuthors verifies every id references an existing author.
// Must be called with the DB lock held.
func (r *bookRepository) requireAuthors(ids []uuid.UUID) error {
	for _, authorID := range ids {
		if _, err := r.db.authors.Get(authorID); err != nil {
			return fmt.Errorf("%w: %s", book.ErrAuthorNotFound, authorID)
		}
	}
	return nil
}
