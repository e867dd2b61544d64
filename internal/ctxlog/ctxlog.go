// Package ctxlog передает slog.Logger через context.Context
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// key - неэкспортируемый тип, чтобы ключ не пересекался с ключами других пакетов
type key struct{}

var loggerKey = key{}

// WithLogger возвращает новый контекст с переданным логгером
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext извлекает логгер из контекста.
// Если логгера нет, возвращается slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel разбирает уровень логирования: debug, info, warn, error
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("неизвестный уровень логирования %q", s)
	}
}

// NewLogger создает текстовый логгер с заданным уровнем
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *slog.Logger {
	return NewLogger(io.Discard, slog.LevelError)
}
