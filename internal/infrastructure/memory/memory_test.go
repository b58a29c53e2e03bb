package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/domains/book"
)

func mustCreateAuthor(t *testing.T, repo author.Repository, name string) *author.Author {
	t.Helper()
	a, err := repo.Create(context.Background(), &author.Author{Name: name})
	require.NoError(t, err)
	return a
}

func mustCreateBook(t *testing.T, repo book.Repository, title string, authorIDs ...uuid.UUID) *book.Book {
	t.Helper()
	b, err := repo.Create(context.Background(), &book.Book{Title: title, AuthorIDs: authorIDs})
	require.NoError(t, err)
	return b
}

// requireConsistentIndex asserts the derived-consistency invariant:
// B.ID in A.BookIDs exactly when A.ID in B.AuthorIDs.
func requireConsistentIndex(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	authors, _, err := db.Authors().GetAll(ctx, author.AuthorFilter{Limit: MaxLimit})
	require.NoError(t, err)
	books, _, err := db.Books().GetAll(ctx, book.BookFilter{Limit: MaxLimit})
	require.NoError(t, err)

	for _, a := range authors {
		for _, b := range books {
			inAuthor := containsID(a.BookIDs, b.ID)
			inBook := containsID(b.AuthorIDs, a.ID)
			require.Equal(t, inBook, inAuthor,
				"index inconsistent for author %s / book %s", a.ID, b.ID)
		}
	}
}

func TestBookCreateLinksAllAuthors(t *testing.T) {
	db := NewDB()
	a1 := mustCreateAuthor(t, db.Authors(), "Jane Doe")
	a2 := mustCreateAuthor(t, db.Authors(), "John Smith")

	b := mustCreateBook(t, db.Books(), "Example", a1.ID, a2.ID)

	for _, id := range []uuid.UUID{a1.ID, a2.ID} {
		got, err := db.Authors().GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{b.ID}, got.BookIDs)
	}
	requireConsistentIndex(t, db)
}

func TestBookCreateMissingAuthorMutatesNothing(t *testing.T) {
	db := NewDB()
	a1 := mustCreateAuthor(t, db.Authors(), "Jane Doe")
	missing := uuid.New()

	_, err := db.Books().Create(context.Background(), &book.Book{
		Title:     "Example",
		AuthorIDs: []uuid.UUID{a1.ID, missing},
	})
	require.ErrorIs(t, err, book.ErrAuthorNotFound)
	assert.Contains(t, err.Error(), missing.String())

	// Nothing was written: no book exists, the valid author is untouched.
	_, total, err := db.Books().GetAll(context.Background(), book.BookFilter{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	got, err := db.Authors().GetByID(context.Background(), a1.ID)
	require.NoError(t, err)
	assert.Empty(t, got.BookIDs)
}

func TestBookUpdateRelinksSymmetricDifference(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	a1 := mustCreateAuthor(t, db.Authors(), "Kept")
	a2 := mustCreateAuthor(t, db.Authors(), "Removed")
	a3 := mustCreateAuthor(t, db.Authors(), "Added")

	b := mustCreateBook(t, db.Books(), "Shifting", a1.ID, a2.ID)

	updated, err := db.Books().Update(ctx, b.ID, "Shifting", []uuid.UUID{a1.ID, a3.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a1.ID, a3.ID}, updated.AuthorIDs)

	kept, err := db.Authors().GetByID(ctx, a1.ID)
	require.NoError(t, err)
	removed, err := db.Authors().GetByID(ctx, a2.ID)
	require.NoError(t, err)
	added, err := db.Authors().GetByID(ctx, a3.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID}, kept.BookIDs)
	assert.Empty(t, removed.BookIDs)
	assert.Equal(t, []uuid.UUID{b.ID}, added.BookIDs)
	requireConsistentIndex(t, db)
}

func TestBookUpdateInvalidAuthorIsAtomic(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	a1 := mustCreateAuthor(t, db.Authors(), "Original")
	b := mustCreateBook(t, db.Books(), "Before", a1.ID)

	_, err := db.Books().Update(ctx, b.ID, "After", []uuid.UUID{uuid.New()})
	require.ErrorIs(t, err, book.ErrAuthorNotFound)

	// Title, author set and index are all untouched.
	got, err := db.Books().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Before", got.Title)
	assert.Equal(t, []uuid.UUID{a1.ID}, got.AuthorIDs)

	a, err := db.Authors().GetByID(ctx, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID}, a.BookIDs)
	requireConsistentIndex(t, db)
}

func TestBookUpdateNotFound(t *testing.T) {
	db := NewDB()
	a1 := mustCreateAuthor(t, db.Authors(), "Someone")

	_, err := db.Books().Update(context.Background(), uuid.New(), "Ghost", []uuid.UUID{a1.ID})
	require.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookDeleteUnlinksEveryAuthor(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	a1 := mustCreateAuthor(t, db.Authors(), "Jane Doe")
	a2 := mustCreateAuthor(t, db.Authors(), "John Smith")
	b := mustCreateBook(t, db.Books(), "Example", a1.ID, a2.ID)

	require.NoError(t, db.Books().Delete(ctx, b.ID))

	for _, id := range []uuid.UUID{a1.ID, a2.ID} {
		got, err := db.Authors().GetByID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, got.BookIDs)
	}

	require.ErrorIs(t, db.Books().Delete(ctx, b.ID), book.ErrBookNotFound)
	requireConsistentIndex(t, db)
}

func TestAuthorDeleteRejectedWhileReferenced(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	a1 := mustCreateAuthor(t, db.Authors(), "Busy")
	b := mustCreateBook(t, db.Books(), "Holding on", a1.ID)

	err := db.Authors().Delete(ctx, a1.ID)
	require.ErrorIs(t, err, author.ErrAuthorHasBooks)

	// Once the book is gone the delete goes through.
	require.NoError(t, db.Books().Delete(ctx, b.ID))
	require.NoError(t, db.Authors().Delete(ctx, a1.ID))
	require.ErrorIs(t, db.Authors().Delete(ctx, a1.ID), author.ErrAuthorNotFound)
}

func TestIdentifiersAreUniqueAcrossEntities(t *testing.T) {
	db := NewDB()
	seen := make(map[uuid.UUID]bool)

	for i := 0; i < 50; i++ {
		a := mustCreateAuthor(t, db.Authors(), fmt.Sprintf("Author %d", i))
		require.False(t, seen[a.ID])
		seen[a.ID] = true

		b := mustCreateBook(t, db.Books(), fmt.Sprintf("Book %d", i), a.ID)
		require.False(t, seen[b.ID])
		seen[b.ID] = true
	}
}

func TestAuthorListFilterAndBookListFilters(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	jane := mustCreateAuthor(t, db.Authors(), "Jane Doe")
	john := mustCreateAuthor(t, db.Authors(), "John Smith")

	b1 := mustCreateBook(t, db.Books(), "Go in Practice", jane.ID)
	mustCreateBook(t, db.Books(), "Go Workbook", john.ID)
	mustCreateBook(t, db.Books(), "Cooking", jane.ID)

	authors, total, err := db.Authors().GetAll(ctx, author.AuthorFilter{Search: "Jane", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, authors, 1)
	assert.Equal(t, "Jane Doe", authors[0].Name)

	// Title and author filters compose with AND.
	books, total, err := db.Books().GetAll(ctx, book.BookFilter{
		Search:   "Go",
		AuthorID: &jane.ID,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, b1.ID, books[0].ID)
}

func TestConcurrentBookMutationsKeepIndexConsistent(t *testing.T) {
	db := NewDB()
	ctx := context.Background()

	var authorIDs []uuid.UUID
	for i := 0; i < 4; i++ {
		a := mustCreateAuthor(t, db.Authors(), fmt.Sprintf("Author %d", i))
		authorIDs = append(authorIDs, a.ID)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := db.Books().Create(ctx, &book.Book{
				Title:     fmt.Sprintf("Book %d", i),
				AuthorIDs: []uuid.UUID{authorIDs[i%len(authorIDs)]},
			})
			if err != nil {
				return
			}
			if i%2 == 0 {
				_ = db.Books().Delete(ctx, b.ID)
			}
		}(i)

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Readers must never observe a half-linked pair.
			a, err := db.Authors().GetByID(ctx, authorIDs[i%len(authorIDs)])
			if err != nil {
				return
			}
			for _, bookID := range a.BookIDs {
				_, _ = db.Books().GetByID(ctx, bookID)
			}
		}(i)
	}
	wg.Wait()

	requireConsistentIndex(t, db)
}
