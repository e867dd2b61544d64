// Package metadata извлекает название и исполнителя из аудио файлов,
// чтобы заранее заполнить форму добавления песни
package metadata

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/hazadus/songreg/internal/register"
)

// SongMetadata хранит данные, которые можно подставить в форму
type SongMetadata struct {
	Artist string
	Title  string
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker.
// Пустые теги дополняются значениями из имени файла.
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) SongMetadata {
	fallback := e.getDefaultMetadata(source)

	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return fallback
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return fallback
	}

	result := SongMetadata{
		Artist: strings.TrimSpace(metadata.Artist()),
		Title:  strings.TrimSpace(metadata.Title()),
	}
	if result.Artist == "" {
		result.Artist = fallback.Artist
	}
	if result.Title == "" {
		result.Title = fallback.Title
	}
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) SongMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// Prefill подставляет название и исполнителя из файла в форму.
// Уже заполненные поля и song_id не трогаются.
func (e *Extractor) Prefill(form register.Form, filePath string) SongMetadata {
	metadata := e.ExtractFromFile(filePath)

	if form.Value(register.FieldTitle) == "" {
		form.SetValue(register.FieldTitle, metadata.Title)
	}
	if form.Value(register.FieldArtist) == "" {
		form.SetValue(register.FieldArtist, metadata.Artist)
	}
	return metadata
}

// getDefaultMetadata возвращает метаданные на основе имени файла.
// Если исполнителя определить нельзя, поле остается пустым.
func (e *Extractor) getDefaultMetadata(source string) SongMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return SongMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return SongMetadata{
		Title: nameWithoutExt,
	}
}
