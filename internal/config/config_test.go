package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// clearEnv сбрасывает переменные окружения, чтобы тесты не зависели от машины
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvListenAddr, EnvLogLevel, EnvListTitle, EnvLogFile} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	testConfig := Config{
		ListenAddr: "127.0.0.1:9000",
		LogLevel:   "debug",
		ListTitle:  "Мои песни",
		LogFile:    "~/songreg.log",
	}

	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.ListenAddr != testConfig.ListenAddr {
		t.Errorf("Ожидался ListenAddr: %s, получено: %s", testConfig.ListenAddr, loadedConfig.ListenAddr)
	}
	if loadedConfig.LogLevel != testConfig.LogLevel {
		t.Errorf("Ожидался LogLevel: %s, получено: %s", testConfig.LogLevel, loadedConfig.LogLevel)
	}
	if loadedConfig.ListTitle != testConfig.ListTitle {
		t.Errorf("Ожидался ListTitle: %s, получено: %s", testConfig.ListTitle, loadedConfig.ListTitle)
	}

	// Проверяем, что тильда в LogFile раскрывается
	home, _ := os.UserHomeDir()
	expectedLogFile := filepath.Join(home, "songreg.log")
	if loadedConfig.LogFile != expectedLogFile {
		t.Errorf("Ожидался LogFile: %s, получено: %s", expectedLogFile, loadedConfig.LogFile)
	}
}

func TestDefaultConfig(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal_config.yaml")

	// Минимальная конфигурация: только уровень логирования
	if err := os.WriteFile(configPath, []byte("log_level: warn\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.ListenAddr != DefaultListenAddr {
		t.Errorf("Ожидался ListenAddr по умолчанию: %s, получено: %s", DefaultListenAddr, loadedConfig.ListenAddr)
	}
	if loadedConfig.ListTitle != DefaultListTitle {
		t.Errorf("Ожидался ListTitle по умолчанию: %s, получено: %s", DefaultListTitle, loadedConfig.ListTitle)
	}
	if loadedConfig.LogLevel != "warn" {
		t.Errorf("Ожидался LogLevel: warn, получено: %s", loadedConfig.LogLevel)
	}
	if loadedConfig.LogFile != "" {
		t.Errorf("Ожидался пустой LogFile, получено: %s", loadedConfig.LogFile)
	}
}

func TestEnvVarOverride(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	baseConfig := Config{
		ListenAddr: ":7000",
		LogLevel:   "info",
		ListTitle:  "From file",
	}
	data, err := yaml.Marshal(baseConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	t.Setenv(EnvListenAddr, ":9999")
	t.Setenv(EnvListTitle, "From env")

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.ListenAddr != ":9999" {
		t.Errorf("Ожидался ListenAddr из окружения: :9999, получено: %s", loadedConfig.ListenAddr)
	}
	if loadedConfig.ListTitle != "From env" {
		t.Errorf("Ожидался ListTitle из окружения: From env, получено: %s", loadedConfig.ListTitle)
	}
	// Переменная не задана - значение берется из файла
	if loadedConfig.LogLevel != "info" {
		t.Errorf("Ожидался LogLevel из файла: info, получено: %s", loadedConfig.LogLevel)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	clearEnv(t)

	loadedConfig, err := LoadConfig("/non/existent/config.yaml")
	if err != nil {
		t.Fatalf("Отсутствующий файл не должен быть ошибкой: %v", err)
	}

	defaults := Default()
	if *loadedConfig != *defaults {
		t.Errorf("Ожидалась конфигурация по умолчанию %+v, получено %+v", defaults, loadedConfig)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := `listen_addr: ":8080"
list_title: [unclosed array
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	envPath := filepath.Join(tempDir, ".env")
	if err := os.WriteFile(envPath, []byte("SONGREG_LIST_TITLE=Dotenv title\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи .env: %v", err)
	}

	// godotenv.Load не перезаписывает уже заданные переменные,
	// поэтому снимаем пустое значение, выставленное clearEnv
	os.Unsetenv(EnvListTitle)

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("Ошибка загрузки .env: %v", err)
	}

	loadedConfig, err := LoadConfig(filepath.Join(tempDir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if loadedConfig.ListTitle != "Dotenv title" {
		t.Errorf("Ожидался ListTitle из .env: Dotenv title, получено: %s", loadedConfig.ListTitle)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Отсутствующий .env не должен быть ошибкой: %v", err)
	}
}
