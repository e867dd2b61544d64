// Package register содержит логику добавления и отображения песен сессии
package register

import (
	"errors"
	"log/slog"

	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/songlist"
)

// Field - ключ поля формы
type Field string

// Ключи полей формы и списка отображения
const (
	FieldTitle  Field = "title"
	FieldArtist Field = "artist"
	FieldSongID Field = "song_id"

	DisplayKey = "songList"
)

// Fields перечисляет поля формы в порядке ввода
var Fields = []Field{FieldTitle, FieldArtist, FieldSongID}

// ErrMissingField - единственная ошибка добавления
var ErrMissingField = data.ErrMissingField

// Form - поверхность с тремя текстовыми полями
type Form interface {
	Value(field Field) string
	SetValue(field Field, value string)
}

// Display - поверхность, на которой показывается список песен
type Display interface {
	Show(lines []string)
}

// Manager управляет реестром песен одной сессии
type Manager struct {
	register *data.Register
	form     Form
	display  Display
	logger   *slog.Logger
}

// NewManager создает новый экземпляр Manager
func NewManager(register *data.Register, form Form, display Display, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		register: register,
		form:     form,
		display:  display,
		logger:   logger,
	}
}

// AddSong читает поля формы и добавляет песню в конец реестра.
// Если хотя бы одно поле пустое, возвращается ErrMissingField и ничего не меняется.
func (m *Manager) AddSong() (data.Song, error) {
	song, err := data.NewSong(
		m.form.Value(FieldTitle),
		m.form.Value(FieldArtist),
		m.form.Value(FieldSongID),
	)
	if err != nil {
		m.logger.Info("add rejected", "error", err)
		return data.Song{}, err
	}

	if err := m.register.Add(song); err != nil {
		return data.Song{}, err
	}
	m.logger.Debug("song added", "song_id", song.SongID, "count", m.register.Len())

	m.DisplaySongs()
	m.ClearInputs()
	return song, nil
}

// DisplaySongs полностью перерисовывает список песен
func (m *Manager) DisplaySongs() {
	m.display.Show(songlist.Lines(m.register.Songs()))
}

// ClearInputs очищает все поля формы
func (m *Manager) ClearInputs() {
	for _, field := range Fields {
		m.form.SetValue(field, "")
	}
}

// Songs возвращает песни реестра в порядке добавления
func (m *Manager) Songs() []data.Song {
	return m.register.Songs()
}

// AlertMessage возвращает текст уведомления для ошибки добавления
func AlertMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrMissingField) {
		return ErrMissingField.Error()
	}
	return "Error: " + err.Error()
}
