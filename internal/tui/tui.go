// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/metadata"
	"github.com/hazadus/songreg/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	songs     *data.Register
	listTitle string
	prefill   string // Аудио файл для предварительного заполнения формы
	logger    *slog.Logger
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(songs *data.Register, listTitle, prefill string, logger *slog.Logger) *App {
	return &App{
		songs:     songs,
		listTitle: listTitle,
		prefill:   prefill,
		logger:    logger,
	}
}

// Model создает модель Bubble Tea для текущей сессии
func (tuiApp *App) Model() *app.MainModel {
	model := app.NewMainModel(tuiApp.songs, tuiApp.listTitle, tuiApp.logger)
	if tuiApp.prefill != "" {
		metadata.NewExtractor().Prefill(model.Form(), tuiApp.prefill)
	}
	return model
}

// Run запускает TUI приложение
func (tuiApp *App) Run(opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(tuiApp.Model(), opts...)

	_, err := p.Run()
	return err
}
