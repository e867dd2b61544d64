// Package songlist превращает реестр песен в строки для отображения
package songlist

import (
	"fmt"

	"github.com/hazadus/songreg/internal/data"
)

// Format возвращает строку вида "<title> by <artist> (ID: <song_id>)"
func Format(song data.Song) string {
	return fmt.Sprintf("%s by %s (ID: %s)", song.Title, song.Artist, song.SongID)
}

// Lines возвращает по одной строке на каждую песню в порядке добавления
func Lines(songs []data.Song) []string {
	lines := make([]string, 0, len(songs))
	for _, song := range songs {
		lines = append(lines, Format(song))
	}
	return lines
}
