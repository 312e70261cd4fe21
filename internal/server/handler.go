package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookregistry/internal/listing"
	"bookregistry/internal/opds"
	"bookregistry/internal/response"
	"bookregistry/internal/storage/books"
	"bookregistry/internal/types"
)

var errNotFound = errors.New("book not found")

type bookPayload struct {
	Title         string  `json:"title"`
	Publisher     string  `json:"publisher"`
	Author        string  `json:"author"`
	Edition       string  `json:"edition"`
	DatePublished string  `json:"date_published"`
	Series        *string `json:"series"`
}

type seriesPayload struct {
	Series *string `json:"series"`
}

func Handler(br books.Repository, rr *response.Responder) http.Handler {
	r := chi.NewRouter()

	r.Get("/books", func(w http.ResponseWriter, r *http.Request) {
		rr.SendJson(w, r.Context(), struct {
			Books []types.Book `json:"books"`
		}{Books: query(r, br)})
	})

	r.Post("/books", func(w http.ResponseWriter, r *http.Request) {
		var p bookPayload
		if err := response.DecodeJson(r, &p); err != nil {
			rr.RespondAndLogCustom(w, r.Context(), fmt.Errorf("invalid book payload: %w", err),
				slog.LevelInfo, http.StatusBadRequest)
			return
		}

		if p.Series != nil {
			br.AddBookWithSeries(r.Context(), p.Title, p.Publisher, p.Author, p.Edition, p.DatePublished, *p.Series)
		} else {
			br.AddBook(r.Context(), p.Title, p.Publisher, p.Author, p.Edition, p.DatePublished)
		}

		rr.SendJsonStatus(w, r.Context(), http.StatusCreated, types.Book{
			Title:         p.Title,
			Publisher:     p.Publisher,
			Author:        p.Author,
			Edition:       p.Edition,
			DatePublished: p.DatePublished,
			Series:        p.Series,
		})
	})

	r.Get("/books/{title}", func(w http.ResponseWriter, r *http.Request) {
		title, ok := titleParam(w, r, rr)
		if !ok {
			return
		}

		book, found := br.GetBookByTitle(r.Context(), title)
		if !found {
			rr.RespondAndLogCustom(w, r.Context(), errNotFound, slog.LevelDebug, http.StatusNotFound)
			return
		}

		rr.SendJson(w, r.Context(), book)
	})

	r.Delete("/books/{title}", func(w http.ResponseWriter, r *http.Request) {
		title, ok := titleParam(w, r, rr)
		if !ok {
			return
		}

		if !br.RemoveBook(r.Context(), title) {
			rr.RespondAndLogCustom(w, r.Context(), errNotFound, slog.LevelDebug, http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})

	r.Put("/books/{title}/series", func(w http.ResponseWriter, r *http.Request) {
		title, ok := titleParam(w, r, rr)
		if !ok {
			return
		}

		var p seriesPayload
		if err := response.DecodeJson(r, &p); err != nil {
			rr.RespondAndLogCustom(w, r.Context(), fmt.Errorf("invalid series payload: %w", err),
				slog.LevelInfo, http.StatusBadRequest)
			return
		}

		if p.Series == nil {
			rr.RespondAndLogCustom(w, r.Context(), errors.New("series is required"),
				slog.LevelInfo, http.StatusBadRequest)
			return
		}

		if !br.AddBookToSeries(r.Context(), title, *p.Series) {
			rr.RespondAndLogCustom(w, r.Context(), errNotFound, slog.LevelDebug, http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/authors", func(w http.ResponseWriter, r *http.Request) {
		rr.SendJson(w, r.Context(), struct {
			Authors []string `json:"authors"`
		}{Authors: br.Authors(r.Context())})
	})

	r.Get("/series", func(w http.ResponseWriter, r *http.Request) {
		rr.SendJson(w, r.Context(), struct {
			Series []string `json:"series"`
		}{Series: br.Series(r.Context())})
	})

	r.Get("/list", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		p := listing.Printer{Out: &buf, Books: br}
		q := r.URL.Query()

		var err error
		switch {
		case q.Has("title"):
			err = p.ListBookByTitle(r.Context(), q.Get("title"))
		case q.Has("author"):
			err = p.ListBooksByAuthor(r.Context(), q.Get("author"))
		case q.Has("publisher"):
			err = p.ListBooksByPublisher(r.Context(), q.Get("publisher"))
		case q.Has("series"):
			err = p.ListBooksInSeries(r.Context(), q.Get("series"))
		default:
			err = p.ListAllBooks(r.Context())
		}

		if err != nil {
			rr.RespondAndLogError(w, r.Context(), err)
			return
		}

		rr.SendRaw(w, "text/plain; charset=utf-8", buf.Bytes())
	})

	r.Get("/opds", func(w http.ResponseWriter, r *http.Request) {
		feed, err := opds.Render(feedTitle(r.URL.Query()), query(r, br))
		if err != nil {
			rr.RespondAndLogError(w, r.Context(), err)
			return
		}

		rr.SendRaw(w, opds.ContentType, feed)
	})

	return r
}

// query applies at most one exact filter, checked in the order author, publisher, series.
// A present but empty parameter still filters, for an empty value.
func query(r *http.Request, br books.Repository) []types.Book {
	q := r.URL.Query()

	switch {
	case q.Has("author"):
		return br.GetBooksByAuthor(r.Context(), q.Get("author"))
	case q.Has("publisher"):
		return br.GetBooksByPublisher(r.Context(), q.Get("publisher"))
	case q.Has("series"):
		return br.GetBooksInSeries(r.Context(), q.Get("series"))
	default:
		return br.GetAllBooks(r.Context())
	}
}

func feedTitle(q url.Values) string {
	switch {
	case q.Has("author"):
		return "Books by " + q.Get("author")
	case q.Has("publisher"):
		return "Books published by " + q.Get("publisher")
	case q.Has("series"):
		return "Books in series " + q.Get("series")
	default:
		return "All books"
	}
}

// titleParam decodes the title path segment. chi matches on the raw path when the request
// carried escapes Go could not normalise (e.g. %2F), leaving the segment still encoded.
func titleParam(w http.ResponseWriter, r *http.Request, rr *response.Responder) (string, bool) {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath == "" || !strings.Contains(title, "%") {
		return title, true
	}

	title, err := url.PathUnescape(title)
	if err != nil {
		rr.RespondAndLogCustom(w, r.Context(), fmt.Errorf("invalid title: %w", err),
			slog.LevelInfo, http.StatusBadRequest)
		return "", false
	}

	return title, true
}
