// Package config загружает конфигурацию сервиса из переменных окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrMissingEnv indicates that a required environment variable is not set.
// Отсутствие обязательной переменной - фатальная ошибка старта.
var ErrMissingEnv = errors.New("required environment variable is not set")

// Значения по умолчанию для необязательных настроек
const (
	DefaultUploadDir     = "uploads"
	DefaultDatabasePath  = "notes.db"
	DefaultPort          = 5000
	DefaultMaxUploadSize = 16 << 20 // 16 MiB
)

// Config конфигурация сервиса
type Config struct {
	BotToken      string // BotToken токен Telegram-бота (TOKEN)
	UploadDir     string // UploadDir каталог для загруженных файлов (UPLOAD_FOLDER)
	DatabasePath  string // DatabasePath путь к файлу SQLite (DATABASE_PATH)
	AllowedUserID int64  // AllowedUserID единственный авторизованный пользователь (USER_ID)
	ChannelID     int64  // ChannelID канал для relay-уведомлений (CHANNEL_ID)
	MaxUploadSize int64  // MaxUploadSize лимит размера загрузки в байтах (MAX_CONTENT_LENGTH)
	Port          int    // Port порт HTTP-сервера (PORT)
}

// Load читает конфигурацию из окружения.
// TOKEN, USER_ID и CHANNEL_ID обязательны, остальное имеет значения
// по умолчанию.
func Load() (*Config, error) {
	cfg := &Config{
		UploadDir:     DefaultUploadDir,
		DatabasePath:  DefaultDatabasePath,
		MaxUploadSize: DefaultMaxUploadSize,
		Port:          DefaultPort,
	}

	cfg.BotToken = os.Getenv("TOKEN")
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: TOKEN", ErrMissingEnv)
	}

	userID, err := requiredInt64("USER_ID")
	if err != nil {
		return nil, err
	}
	cfg.AllowedUserID = userID

	channelID, err := requiredInt64("CHANNEL_ID")
	if err != nil {
		return nil, err
	}
	cfg.ChannelID = channelID

	if dir := os.Getenv("UPLOAD_FOLDER"); dir != "" {
		cfg.UploadDir = dir
	}

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}

	if raw := os.Getenv("MAX_CONTENT_LENGTH"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_CONTENT_LENGTH %q: %w", raw, err)
		}
		cfg.MaxUploadSize = size
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// requiredInt64 читает обязательную числовую переменную окружения
func requiredInt64(name string) (int64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingEnv, name)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}

	return value, nil
}
