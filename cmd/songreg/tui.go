package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/songreg/internal/ctxlog"
	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	var prefill string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch an interactive terminal form for adding songs to the session list.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(prefill)
		},
	}

	cmd.Flags().StringVar(&prefill, "prefill", "", "audio file to take the title and artist from")

	return cmd
}

func (app *Application) launchTUI(prefill string) error {
	// Экран занят интерфейсом, поэтому логи пишутся только в файл
	logger := ctxlog.Discard()
	if app.Config.LogFile != "" {
		file, err := os.OpenFile(app.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("ошибка открытия файла логов: %w", err)
		}
		defer file.Close()

		if logger, err = newLogger(file, app.Config); err != nil {
			return err
		}
	}

	tuiApp := tui.NewApp(data.NewRegister(), app.Config.ListTitle, prefill, logger)
	if err := tuiApp.Run(); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
