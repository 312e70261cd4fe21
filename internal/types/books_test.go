package types

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries(t *testing.T) {
	b := NewBook("T", "P", "A", "E", "D")
	_, ok := b.InSeries()
	assert.False(t, ok)

	snapshot := *b
	b.SetSeries("S1")
	b.SetSeries("S2")

	s, ok := b.InSeries()
	assert.True(t, ok)
	assert.Equal(t, "S2", s)
	assert.Nil(t, snapshot.Series)

	e := NewBookInSeries("T", "P", "A", "E", "D", "")
	s, ok = e.InSeries()
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestBookJSON(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	bs, err := json.Marshal(NewBook("T", "P", "A", "E", "D"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","publisher":"P","author":"A","edition":"E","date_published":"D"}`, string(bs))

	bs, err = json.Marshal(NewBookInSeries("T", "P", "A", "E", "D", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","publisher":"P","author":"A","edition":"E","date_published":"D","series":""}`,
		string(bs))
}
