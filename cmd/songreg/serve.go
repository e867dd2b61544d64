package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/songreg/internal/ctxlog"
	"github.com/hazadus/songreg/internal/web"
)

// createServeCommand создает команду serve с привязкой к экземпляру приложения
func (app *Application) createServeCommand(ctx context.Context) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the song form over HTTP",
		Long:  `Serve an HTML form that adds songs to a list kept in memory for as long as the server runs.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if addr == "" {
				addr = app.Config.ListenAddr
			}
			server := web.NewServer(addr, app.Config.ListTitle, ctxlog.FromContext(ctx))
			if err := server.ListenAndServe(ctx); err != nil {
				return fmt.Errorf("ошибка HTTP сервера: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
