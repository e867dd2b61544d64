package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/songreg/internal/ctxlog"
	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/metadata"
	"github.com/hazadus/songreg/internal/register"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	var (
		title   string
		artist  string
		songID  string
		prefill string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one song and print the list",
		Long:  `Add one song from flags to a fresh list and print the list. Title and artist can be taken from the tags of an audio file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := register.NewMemoryForm()
			form.Fill(title, artist, songID)
			if prefill != "" {
				metadata.NewExtractor().Prefill(form, prefill)
			}
			return app.addSong(cmd, form)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "song title")
	cmd.Flags().StringVar(&artist, "artist", "", "song artist")
	cmd.Flags().StringVar(&songID, "song-id", "", "song identifier")
	cmd.Flags().StringVar(&prefill, "prefill", "", "audio file to take the title and artist from")

	return cmd
}

// addSong добавляет песню из формы в новый реестр и печатает список
func (app *Application) addSong(cmd *cobra.Command, form *register.MemoryForm) error {
	display := register.NewWriterDisplay(cmd.OutOrStdout(), app.Config.ListTitle)
	manager := register.NewManager(data.NewRegister(), form, display, ctxlog.FromContext(cmd.Context()))

	if _, err := manager.AddSong(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), register.AlertMessage(err))
		return fmt.Errorf("песня не добавлена: %w", err)
	}
	return nil
}
