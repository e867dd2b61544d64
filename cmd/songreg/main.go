package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/songreg/internal/config"
	"github.com/hazadus/songreg/internal/ctxlog"
)

const (
	defaultConfigPath = "~/.songreg"
	defaultEnvPath    = ".env"
)

// Application хранит зависимости, общие для всех команд.
// Логгер передается командам через контекст (см. ctxlog).
type Application struct {
	Config *config.Config
}

// NewApplication создает экземпляр приложения
func NewApplication(cfg *config.Config) *Application {
	return &Application{
		Config: cfg,
	}
}

// newLogger создает логгер, пишущий в w, с уровнем из конфигурации
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := ctxlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return ctxlog.NewLogger(w, level), nil
}

func main() {
	if err := config.LoadDotEnv(defaultEnvPath); err != nil {
		log.Printf("Предупреждение: %v", err)
	}

	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		log.Fatalf("Ошибка настройки логирования: %v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = ctxlog.WithLogger(ctx, logger)

	app := NewApplication(cfg)
	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		logger.Debug("command failed", "error", err)
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	stop()
}
