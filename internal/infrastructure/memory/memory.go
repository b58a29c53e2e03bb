package memory

import (
	"sync"

	"github.com/google/uuid"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/domains/book"
)

// DB is the in-memory catalog database: one collection per entity type
// plus the association index that keeps Author.BookIDs consistent with
// Book.AuthorIDs.
//
// Locking model: every repository operation takes d.mu, writers
// exclusively. A book mutation and its author-side link updates happen
// under one write lock, so readers never observe a half-applied pair.
type DB struct {
	mu sync.RWMutex

	authors *Collection[author.Author]
	books   *Collection[book.Book]
}

// NewDB creates an empty catalog database.
func NewDB() *DB {
	return &DB{
		authors: NewCollection(func(a author.Author) uuid.UUID { return a.ID }),
		books:   NewCollection(func(b book.Book) uuid.UUID { return b.ID }),
	}
}

// Authors returns the author repository backed by this database.
func (d *DB) Authors() author.Repository {
	return &authorRepository{db: d}
}

// Books returns the book repository backed by this database.
func (d *DB) Books() book.Repository {
	return &bookRepository{db: d}
}

// NewID produces a fresh random identifier. Identifiers are unique for
// the process lifetime and never reused, even after deletion.
func NewID() uuid.UUID {
	return uuid.New()
}

// cloneIDs copies an id slice so stored state never aliases what callers
// or mutators hold.
func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
