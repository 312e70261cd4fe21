package books

import (
	"context"

	"bookregistry/internal/types"
)

// Repository is the book registry. Lookups are exact, case-sensitive string matches and
// every listing keeps insertion order. Returned books are snapshots.
type Repository interface {
	AddBook(ctx context.Context, title, publisher, author, edition, datePublished string)
	AddBookWithSeries(ctx context.Context, title, publisher, author, edition, datePublished, series string)

	// RemoveBook drops the first book with the given title and reports whether one was found.
	RemoveBook(ctx context.Context, title string) bool
	// AddBookToSeries sets the series of the first book with the given title.
	AddBookToSeries(ctx context.Context, title, series string) bool

	GetBookByTitle(ctx context.Context, title string) (types.Book, bool)
	// Listing methods shall return empty NON-NIL slices when nothing matches!
	GetBooksByAuthor(ctx context.Context, author string) []types.Book
	GetBooksByPublisher(ctx context.Context, publisher string) []types.Book
	GetBooksInSeries(ctx context.Context, series string) []types.Book
	GetAllBooks(ctx context.Context) []types.Book

	// Authors and Series return distinct values in the order they first appear.
	Authors(ctx context.Context) []string
	Series(ctx context.Context) []string
}
