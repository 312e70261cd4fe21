package listing

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bookregistry/internal/storage/books"
	"bookregistry/internal/types"
)

const (
	startMarker = "### Start of list ###"
	endMarker   = "### End of list ###"
)

// Printer writes registry query results as plain text lists framed by start/end markers.
type Printer struct {
	Out   io.Writer
	Books books.Repository
}

// ListBookByTitle prints at most one book, the first with the given title.
func (p *Printer) ListBookByTitle(ctx context.Context, title string) error {
	var bs []types.Book
	if b, ok := p.Books.GetBookByTitle(ctx, title); ok {
		bs = append(bs, b)
	}

	return p.write(bs)
}

func (p *Printer) ListBooksByAuthor(ctx context.Context, author string) error {
	return p.write(p.Books.GetBooksByAuthor(ctx, author))
}

func (p *Printer) ListBooksByPublisher(ctx context.Context, publisher string) error {
	return p.write(p.Books.GetBooksByPublisher(ctx, publisher))
}

func (p *Printer) ListBooksInSeries(ctx context.Context, series string) error {
	return p.write(p.Books.GetBooksInSeries(ctx, series))
}

func (p *Printer) ListAllBooks(ctx context.Context) error {
	return p.write(p.Books.GetAllBooks(ctx))
}

func (p *Printer) write(bs []types.Book) error {
	var sb strings.Builder

	sb.WriteString(startMarker + "\n")
	for _, b := range bs {
		sb.WriteString(FormatBook(b) + "\n")
	}
	sb.WriteString(endMarker + "\n")

	if _, err := io.WriteString(p.Out, sb.String()); err != nil {
		return fmt.Errorf("writing book list: %w", err)
	}

	return nil
}

// FormatBook renders a single book line; the series part is present only for books in a series.
func FormatBook(b types.Book) string {
	line := "Title: " + b.Title + ", Publisher: " + b.Publisher + ", Author: " + b.Author +
		", Edition: " + b.Edition + ", Published date: " + b.DatePublished

	if s, ok := b.InSeries(); ok {
		line += ", Book series: " + s
	}

	return line
}
