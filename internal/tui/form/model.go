// Package form содержит модель формы добавления песни для TUI
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/songreg/internal/register"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 0, 0)
)

// SubmitMsg отправляется, когда пользователь нажимает "Add Song"
type SubmitMsg struct{}

// Порядок полей на экране совпадает с register.Fields
var labels = map[register.Field]string{
	register.FieldTitle:  "Title:",
	register.FieldArtist: "Artist:",
	register.FieldSongID: "Song ID:",
}

// Model представляет форму с тремя полями ввода.
// Реализует register.Form.
type Model struct {
	inputs     []textinput.Model
	focusIndex int
	alert      string
}

// NewModel создает пустую форму с фокусом на первом поле
func NewModel() *Model {
	inputs := make([]textinput.Model, len(register.Fields))
	for i, field := range register.Fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = string(field)
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}

	m := &Model{inputs: inputs}
	m.setFocus(0)
	return m
}

// Value возвращает значение поля
func (m *Model) Value(field register.Field) string {
	i := indexOf(field)
	if i < 0 {
		return ""
	}
	return m.inputs[i].Value()
}

// SetValue устанавливает значение поля
func (m *Model) SetValue(field register.Field, value string) {
	i := indexOf(field)
	if i < 0 {
		return
	}
	m.inputs[i].SetValue(value)
}

// SetAlert показывает уведомление под формой. Пустая строка скрывает его.
func (m *Model) SetAlert(alert string) {
	m.alert = alert
}

// Alert возвращает текущее уведомление
func (m *Model) Alert() string {
	return m.alert
}

// FocusFirst переводит фокус на первое поле
func (m *Model) FocusFirst() tea.Cmd {
	return m.setFocus(0)
}

// Focused возвращает индекс активного элемента; len(register.Fields) - кнопка
func (m *Model) Focused() int {
	return m.focusIndex
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return m, submit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter на кнопке отправляет форму
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, submit
			}

			next := m.focusIndex
			if s == "up" || s == "shift+tab" {
				next--
			} else {
				next++
			}

			if next > len(m.inputs) {
				next = 0
			} else if next < 0 {
				next = len(m.inputs)
			}

			return m, m.setFocus(next)
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	// Обновляем активное поле ввода
	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

// View отображает форму
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add a song"))
	b.WriteString("\n")

	for i, field := range register.Fields {
		b.WriteString(labelStyle.Render(labels[field]))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := "[ Add Song ]"
	if m.focusIndex == len(m.inputs) {
		b.WriteString(focusedStyle.Render(button))
	} else {
		b.WriteString(blurredStyle.Render(button))
	}
	b.WriteString("\n")

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: next field • Ctrl+S: add • Ctrl+C: quit"))

	return b.String()
}

func (m *Model) setFocus(index int) tea.Cmd {
	m.focusIndex = index

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == index {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return tea.Batch(cmds...)
}

func submit() tea.Msg {
	return SubmitMsg{}
}

func indexOf(field register.Field) int {
	for i, f := range register.Fields {
		if f == field {
			return i
		}
	}
	return -1
}
