// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
	DefaultListTitle  = "Songs"
)

// Переменные окружения, переопределяющие значения из файла
const (
	EnvListenAddr = "SONGREG_LISTEN_ADDR"
	EnvLogLevel   = "SONGREG_LOG_LEVEL"
	EnvListTitle  = "SONGREG_LIST_TITLE"
	EnvLogFile    = "SONGREG_LOG_FILE"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level"`
	ListTitle  string `yaml:"list_title"`
	LogFile    string `yaml:"log_file"` // Куда писать логи в режиме TUI
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		ListenAddr: DefaultListenAddr,
		LogLevel:   DefaultLogLevel,
		ListTitle:  DefaultListTitle,
	}
}

// LoadDotEnv загружает переменные из .env файла, если он существует
func LoadDotEnv(filePath string) error {
	if err := godotenv.Load(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("ошибка чтения %s: %w", filePath, err)
	}
	return nil
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
// Переменные окружения имеют приоритет над файлом.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	applyEnv(config)

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.ListenAddr == "" {
		config.ListenAddr = DefaultListenAddr
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ListTitle == "" {
		config.ListTitle = DefaultListTitle
	}

	// Раскрываем тильду в пути к логу
	if config.LogFile != "" {
		config.LogFile = strings.Replace(config.LogFile, "~", home, 1)
	}

	return config, nil
}

func applyEnv(config *Config) {
	overrides := map[string]*string{
		EnvListenAddr: &config.ListenAddr,
		EnvLogLevel:   &config.LogLevel,
		EnvListTitle:  &config.ListTitle,
		EnvLogFile:    &config.LogFile,
	}
	for name, field := range overrides {
		if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
			*field = strings.TrimSpace(value)
		}
	}
}
