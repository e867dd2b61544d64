package songlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazadus/songreg/internal/data"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		song     data.Song
		expected string
	}{
		{data.Song{Title: "Imagine", Artist: "John Lennon", SongID: "101"}, "Imagine by John Lennon (ID: 101)"},
		{data.Song{Title: "A", Artist: "B", SongID: "1"}, "A by B (ID: 1)"},
		{data.Song{Title: "<b>x</b>", Artist: "by", SongID: "(ID: 2)"}, "<b>x</b> by by (ID: (ID: 2))"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Format(test.song))
	}
}

func TestLines(t *testing.T) {
	songs := []data.Song{
		{Title: "A", Artist: "B", SongID: "1"},
		{Title: "C", Artist: "D", SongID: "2"},
	}

	assert.Equal(t, []string{"A by B (ID: 1)", "C by D (ID: 2)"}, Lines(songs))
}

func TestLinesEmpty(t *testing.T) {
	lines := Lines(nil)

	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestLinesIsIdempotent(t *testing.T) {
	songs := []data.Song{{Title: "A", Artist: "B", SongID: "1"}}

	assert.Equal(t, Lines(songs), Lines(songs))
}
