package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "songreg",
		Short:         "Collect songs into a list for the current session",
		Long:          `A small tool that reads a title, an artist and a song ID, appends them to an in-memory list and shows the list. Nothing is saved between sessions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createSessionCommand(ctx))
	rootCmd.AddCommand(app.createServeCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
