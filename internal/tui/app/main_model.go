// Package app содержит основную логику TUI приложения
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/register"
	"github.com/hazadus/songreg/internal/tui/form"
	"github.com/hazadus/songreg/internal/tui/songview"
)

// formHeight - примерная высота формы в строках
const formHeight = 12

// MainModel объединяет форму и список песен одной сессии
type MainModel struct {
	manager   *register.Manager
	formModel *form.Model
	songsView *songview.Model
	quitting  bool
}

// NewMainModel создает новую главную модель
func NewMainModel(songs *data.Register, listTitle string, logger *slog.Logger) *MainModel {
	formModel := form.NewModel()
	songsView := songview.NewModel(listTitle)
	manager := register.NewManager(songs, formModel, songsView, logger)

	// Список отображается сразу, даже если он пуст
	manager.DisplaySongs()

	return &MainModel{
		manager:   manager,
		formModel: formModel,
		songsView: songsView,
	}
}

// Form возвращает форму, например для предварительного заполнения
func (m *MainModel) Form() register.Form {
	return m.formModel
}

// Manager возвращает контроллер реестра
func (m *MainModel) Manager() *register.Manager {
	return m.manager
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.formModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.songsView, cmd = m.songsView.Update(msg)
			return m, cmd
		}

	case form.SubmitMsg:
		return m, m.submit()

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		m.formModel, cmd = m.formModel.Update(msg)
		height := msg.Height - formHeight
		if height < 3 {
			height = 3
		}
		m.songsView.SetSize(msg.Width, height)
		return m, cmd
	}

	// Передаем сообщение форме
	var cmd tea.Cmd
	m.formModel, cmd = m.formModel.Update(msg)
	return m, cmd
}

// submit добавляет песню из формы и показывает уведомление при ошибке
func (m *MainModel) submit() tea.Cmd {
	if _, err := m.manager.AddSong(); err != nil {
		m.formModel.SetAlert(register.AlertMessage(err))
		return nil
	}
	m.formModel.SetAlert("")
	return m.formModel.FocusFirst()
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.formModel.View(),
		"",
		m.songsView.View(),
	)
}
