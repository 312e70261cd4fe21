package opds

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/opds-community/libopds2-go/opds1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookregistry/internal/types"
)

func TestRender(t *testing.T) {
	bs := []types.Book{
		*types.NewBook("Dune", "Ace", "Herbert", "1st", "1965.01.01"),
		*types.NewBookInSeries("Dune Messiah", "Ace", "Herbert", "1st", "1969.01.01", "Dune Saga"),
	}

	out, err := Render("Herbert", bs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), xml.Header))
	assert.Contains(t, string(out), `xmlns="http://www.w3.org/2005/Atom"`)

	var feed opds1.Feed
	require.NoError(t, xml.Unmarshal(out, &feed))

	assert.Equal(t, "Herbert", feed.Title)
	require.Len(t, feed.Entries, 2)

	first := feed.Entries[0]
	assert.Equal(t, "tag:book:Dune", first.ID)
	assert.Equal(t, "Dune", first.Title)
	assert.Equal(t, "1965.01.01", first.Issued)
	require.Len(t, first.Author, 1)
	assert.Equal(t, "Herbert", first.Author[0].Name)
	assert.Empty(t, first.Category)
	assert.Equal(t, "Publisher: Ace, Edition: 1st", first.Content.Content)

	second := feed.Entries[1]
	assert.Equal(t, "tag:book:Dune%20Messiah", second.ID)
	require.Len(t, second.Category, 1)
	assert.Equal(t, "Dune Saga", second.Category[0].Term)
	assert.Equal(t, "Publisher: Ace, Edition: 1st, Book series: Dune Saga", second.Content.Content)
}

func TestRender_Empty(t *testing.T) {
	out, err := Render("Nothing", nil)
	require.NoError(t, err)

	var feed opds1.Feed
	require.NoError(t, xml.Unmarshal(out, &feed))
	assert.Empty(t, feed.Entries)
}

func TestBookId(t *testing.T) {
	assert.Equal(t, "tag:book:a%2Fb", BookId("a/b"))
	assert.Equal(t, "tag:book:", BookId(""))
}
