package register

import (
	"fmt"
	"io"
)

// MemoryForm хранит значения полей в памяти
type MemoryForm struct {
	values map[Field]string
}

// NewMemoryForm создает форму с пустыми полями
func NewMemoryForm() *MemoryForm {
	return &MemoryForm{values: make(map[Field]string, len(Fields))}
}

// Fill заполняет все три поля формы
func (f *MemoryForm) Fill(title, artist, songID string) {
	f.SetValue(FieldTitle, title)
	f.SetValue(FieldArtist, artist)
	f.SetValue(FieldSongID, songID)
}

func (f *MemoryForm) Value(field Field) string {
	return f.values[field]
}

func (f *MemoryForm) SetValue(field Field, value string) {
	f.values[field] = value
}

// MemoryDisplay запоминает последний показанный список
type MemoryDisplay struct {
	lines []string
	shown int
}

// Show заменяет содержимое списка
func (d *MemoryDisplay) Show(lines []string) {
	d.lines = append(d.lines[:0:0], lines...)
	d.shown++
}

// Lines возвращает текущее содержимое списка
func (d *MemoryDisplay) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Renders возвращает количество перерисовок
func (d *MemoryDisplay) Renders() int {
	return d.shown
}

// WriterDisplay печатает список в io.Writer при каждой перерисовке
type WriterDisplay struct {
	w     io.Writer
	title string
}

// NewWriterDisplay создает отображение, печатающее список с заголовком
func NewWriterDisplay(w io.Writer, title string) *WriterDisplay {
	return &WriterDisplay{w: w, title: title}
}

func (d *WriterDisplay) Show(lines []string) {
	fmt.Fprintf(d.w, "%s (%d):\n", d.title, len(lines))
	for _, line := range lines {
		fmt.Fprintf(d.w, "  - %s\n", line)
	}
}
