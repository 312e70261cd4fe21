package opds

import (
	"encoding/xml"
	"fmt"
	"net/url"

	"github.com/opds-community/libopds2-go/opds1"

	"bookregistry/internal/types"
)

const (
	ContentType = "application/atom+xml;profile=opds-catalog;kind=acquisition"

	atomNamespace  = "http://www.w3.org/2005/Atom"
	bookIdTemplate = "tag:book:%s"
)

type atomFeed struct {
	XMLName xml.Name `xml:"feed"`
	Xmlns   string   `xml:"xmlns,attr"`
	opds1.Feed
}

// Render encodes books as an OPDS 1 acquisition feed, one entry per book in the given order.
func Render(title string, bs []types.Book) ([]byte, error) {
	feed := atomFeed{Xmlns: atomNamespace}
	feed.Title = title
	feed.Entries = make([]opds1.Entry, 0, len(bs))

	for _, b := range bs {
		feed.Entries = append(feed.Entries, entry(b))
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling opds feed: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}

func entry(b types.Book) opds1.Entry {
	e := opds1.Entry{
		ID:     BookId(b.Title),
		Title:  b.Title,
		Issued: b.DatePublished,
	}

	if b.Author != "" {
		e.Author = []opds1.Author{{Name: b.Author}}
	}

	summary := "Publisher: " + b.Publisher + ", Edition: " + b.Edition
	if s, ok := b.InSeries(); ok {
		summary += ", Book series: " + s
		e.Category = []opds1.Category{{Term: s}}
	}
	e.Content.Content = summary

	return e
}

// BookId is the entry id used for a title; titles are escaped so the tag stays a single token.
func BookId(title string) string {
	return fmt.Sprintf(bookIdTemplate, url.PathEscape(title))
}
