// Package testutil holds fixture data shared by tests. It must not be imported by production code.
package testutil

import (
	"context"

	"bookregistry/internal/storage/books"
	"bookregistry/internal/types"
)

// FillWithSamples appends ten sample books; the first five belong to a series.
func FillWithSamples(ctx context.Context, r books.Repository) {
	r.AddBookWithSeries(ctx, "Book 1", "Publisher 1", "Author 1", "First Edition", "2019.01.01", "Naked gun")
	r.AddBookWithSeries(ctx, "Book 2", "Publisher 1", "Author 1", "Second Edition", "2019.01.02", "Naked gun")
	r.AddBookWithSeries(ctx, "Book 3", "Publisher 2", "Author 1", "First Edition", "2019.01.01", "Sexy gun")
	r.AddBookWithSeries(ctx, "Book 4", "Publisher 3", "Author 2", "First Edition", "2019.01.01", "Naked gun")
	r.AddBookWithSeries(ctx, "Book 5", "Publisher 1", "Author 2", "First Edition", "2019.01.01", "Dressed gun")

	r.AddBook(ctx, "Book 6", "Publisher 1", "Author 1", "First Edition", "2019.01.01")
	r.AddBook(ctx, "Book 7", "Publisher 1", "Author 5", "Second Edition", "2019.01.02")
	r.AddBook(ctx, "Book 8", "Publisher 2", "Author 1", "First Edition", "2019.01.05")
	r.AddBook(ctx, "Book 9", "Publisher 3", "Author 2", "Third Edition", "2019.01.05")
	r.AddBook(ctx, "Book 10", "Publisher 1", "Author 2", "First Edition", "2019.01.06")
}

// Titles flattens books into their titles, keeping order.
func Titles(bs []types.Book) []string {
	ret := make([]string, 0, len(bs))
	for _, b := range bs {
		ret = append(ret, b.Title)
	}
	return ret
}
