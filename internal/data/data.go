// Package data содержит модель песни и реестр песен текущей сессии
package data

import (
	"errors"
)

// ErrMissingField возвращается, если хотя бы одно из обязательных полей пустое
var ErrMissingField = errors.New("Please fill in all fields.")

// Song описывает одну запись реестра
type Song struct {
	Title  string `yaml:"title" json:"title"`
	Artist string `yaml:"artist" json:"artist"`
	SongID string `yaml:"song_id" json:"song_id"` // Произвольный идентификатор, уникальность не проверяется
}

// NewSong создает запись и проверяет, что все поля заполнены
func NewSong(title, artist, songID string) (Song, error) {
	song := Song{
		Title:  title,
		Artist: artist,
		SongID: songID,
	}
	if err := song.Validate(); err != nil {
		return Song{}, err
	}
	return song, nil
}

// Validate проверяет, что ни одно поле не пустое.
// Пробелы не обрезаются: строка " " считается заполненной.
func (s Song) Validate() error {
	if s.Title == "" || s.Artist == "" || s.SongID == "" {
		return ErrMissingField
	}
	return nil
}

// Register хранит песни в порядке добавления.
// Реестр живет столько же, сколько сессия, которой он принадлежит.
type Register struct {
	songs []Song
}

// NewRegister создает пустой реестр
func NewRegister() *Register {
	return &Register{
		songs: make([]Song, 0),
	}
}

// Add добавляет песню в конец реестра.
// При пустом поле реестр не изменяется.
func (r *Register) Add(song Song) error {
	if err := song.Validate(); err != nil {
		return err
	}
	r.songs = append(r.songs, song)
	return nil
}

// Songs возвращает копию списка песен в порядке добавления
func (r *Register) Songs() []Song {
	songs := make([]Song, len(r.songs))
	copy(songs, r.songs)
	return songs
}

// Len возвращает количество песен в реестре
func (r *Register) Len() int {
	return len(r.songs)
}
