package memory

import (
	"github.com/google/uuid"

	"book-catalog/internal/domains/author"
)

// Association index: Book.AuthorIDs is the authoritative side of the
// relation, Author.BookIDs the derived inverse. link and unlink are the
// only writers of Author.BookIDs and are invoked exclusively by book
// repository operations, under the DB write lock.

// link records bookID in the author's BookIDs, preserving link order.
// Idempotent: a no-op when the link already exists.
func (d *DB) link(authorID, bookID uuid.UUID) {
	d.authors.Update(authorID, func(a author.Author) author.Author {
		if containsID(a.BookIDs, bookID) {
			return a
		}
		a.BookIDs = append(cloneIDs(a.BookIDs), bookID)
		return a
	})
}

// unlink removes bookID from the author's BookIDs.
// Idempotent: a no-op when the link is already gone.
func (d *DB) unlink(authorID, bookID uuid.UUID) {
	d.authors.Update(authorID, func(a author.Author) author.Author {
		if !containsID(a.BookIDs, bookID) {
			return a
		}
		ids := make([]uuid.UUID, 0, len(a.BookIDs)-1)
		for _, id := range a.BookIDs {
			if id != bookID {
				ids = append(ids, id)
			}
		}
		a.BookIDs = ids
		return a
	})
}
