package types

// Book is a single registry record. Every field except Series is fixed at construction.
// A nil Series means the book belongs to no series; a pointer to "" is a present, empty series.
type Book struct {
	Title         string  `json:"title"`
	Publisher     string  `json:"publisher"`
	Author        string  `json:"author"`
	Edition       string  `json:"edition"`
	DatePublished string  `json:"date_published"`
	Series        *string `json:"series,omitempty"`
}

func NewBook(title, publisher, author, edition, datePublished string) *Book {
	return &Book{
		Title:         title,
		Publisher:     publisher,
		Author:        author,
		Edition:       edition,
		DatePublished: datePublished,
	}
}

func NewBookInSeries(title, publisher, author, edition, datePublished, series string) *Book {
	b := NewBook(title, publisher, author, edition, datePublished)
	b.SetSeries(series)
	return b
}

// SetSeries swaps in a fresh pointer so snapshots taken earlier keep their old value.
func (b *Book) SetSeries(series string) {
	s := series
	b.Series = &s
}

func (b Book) InSeries() (string, bool) {
	if b.Series == nil {
		return "", false
	}

	return *b.Series, true
}
