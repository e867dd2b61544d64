// Package songview содержит модель списка песен для TUI
package songview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/songreg/internal/utils"
)

var (
	titleStyle      = lipgloss.NewStyle().MarginLeft(2)
	itemStyle       = lipgloss.NewStyle().PaddingLeft(4)
	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
)

// songItem реализует интерфейс list.Item для строки списка
type songItem string

func (i songItem) FilterValue() string {
	return string(i)
}

// songItemDelegate реализует отображение элементов списка
type songItemDelegate struct{}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, _ int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	line := string(i)
	if width := m.Width() - 6; width > 0 {
		line = utils.TruncateString(line, width)
	}
	fmt.Fprint(w, itemStyle.Render(line))
}

// Model представляет список песен.
// Реализует register.Display.
type Model struct {
	list  list.Model
	lines []string
}

// NewModel создает пустой список с заголовком
func NewModel(title string) *Model {
	l := list.New(nil, songItemDelegate{}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle

	return &Model{list: l}
}

// Show полностью заменяет содержимое списка
func (m *Model) Show(lines []string) {
	m.lines = append(m.lines[:0:0], lines...)

	items := make([]list.Item, len(lines))
	for i, line := range lines {
		items[i] = songItem(line)
	}
	m.list.SetItems(items)
}

// Lines возвращает текущее содержимое списка
func (m *Model) Lines() []string {
	return append([]string(nil), m.lines...)
}

// SetSize задает размеры списка
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает список
func (m *Model) View() string {
	return m.list.View()
}
