package library

import (
	"log/slog"

	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/errors"
)

// Library is the live catalog session: the ordered book list plus the
// store it writes through to. The presentation layer owns one Library
// per run instead of sharing process-wide state.
type Library struct {
	books []catalog.Book
	store *Store
}

// Open loads the persisted catalog into a new session. A read or parse
// failure is logged as a non-fatal notice and the session starts with
// an empty catalog.
func Open(store *Store) *Library {
	books, err := store.Load()
	if err != nil {
		slog.Warn("Could not load library, starting with an empty catalog", "file", store.Path(), "error", err)
		books = nil
	}
	return &Library{books: books, store: store}
}

// Books returns the catalog in insertion order. Callers must not
// mutate the returned slice; sorted views come from catalog.SortBy.
func (l *Library) Books() []catalog.Book {
	return l.books
}

// Len returns the number of books in the catalog.
func (l *Library) Len() int {
	return len(l.books)
}

// Add appends a validated book and writes the catalog through to the
// store. A save failure is returned but the book stays in memory.
func (l *Library) Add(book catalog.Book) error {
	l.books = append(l.books, book)
	return l.store.Save(l.books)
}

// AddAll appends a batch of books and saves once at the end. Used by
// the import commands, where the whole import is one user action.
func (l *Library) AddAll(books []catalog.Book) error {
	if len(books) == 0 {
		return nil
	}
	l.books = append(l.books, books...)
	return l.store.Save(l.books)
}

// Remove deletes the first book structurally equal to the given one
// and writes the catalog through. When nothing matches it returns a
// NotFoundError and leaves the catalog unchanged.
func (l *Library) Remove(book catalog.Book) error {
	for i, b := range l.books {
		if b.Equal(book) {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return l.store.Save(l.books)
		}
	}
	return errors.NewNotFoundError(book.Title, book.Author)
}
