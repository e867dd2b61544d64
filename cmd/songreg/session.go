package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/songreg/internal/ctxlog"
	"github.com/hazadus/songreg/internal/data"
	"github.com/hazadus/songreg/internal/register"
)

// createSessionCommand создает команду session с привязкой к экземпляру приложения
func (app *Application) createSessionCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Add songs line by line from standard input",
		Long:  `Prompt for title, artist and song ID repeatedly, printing the list after every added song. End the session with EOF (Ctrl+D).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runSession(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// inputLine - строка ввода или ошибка чтения
type inputLine struct {
	text string
	err  error
}

// readLines читает строки из in в отдельной горутине.
// Длина строки не ограничена. Канал закрывается после EOF или ошибки.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				line := inputLine{text: strings.TrimRight(text, "\r\n")}
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
		}
	}()
	return lines
}

// runSession читает записи из in, пока не закончится ввод или не отменится контекст
func (app *Application) runSession(ctx context.Context, in io.Reader, out io.Writer) error {
	form := register.NewMemoryForm()
	display := register.NewWriterDisplay(out, app.Config.ListTitle)
	manager := register.NewManager(data.NewRegister(), form, display, ctxlog.FromContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Заполняем поля по порядку; EOF посреди записи завершает сессию
		for _, field := range register.Fields {
			fmt.Fprintf(out, "%s: ", field)

			var (
				line inputLine
				ok   bool
			)
			select {
			case <-ctx.Done():
				fmt.Fprintln(out)
				return ctx.Err()
			case line, ok = <-lines:
			}

			if !ok {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Сессия завершена, песен: %d\n", len(manager.Songs()))
				return nil
			}
			if line.err != nil {
				fmt.Fprintln(out)
				return fmt.Errorf("ошибка чтения ввода: %w", line.err)
			}
			form.SetValue(field, line.text)
		}

		// Запись, дочитанная после отмены, не добавляется
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := manager.AddSong(); err != nil {
			fmt.Fprintln(out, register.AlertMessage(err))
		}
	}
}
