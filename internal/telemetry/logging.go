package telemetry

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel определяет уровень логирования из переменной окружения.
// Возможные значения: DEBUG, INFO, WARN, ERROR
// По умолчанию: WARN — диагностика не должна мешать каналу данных CLI.
func LogLevel() slog.Level {
	level := os.Getenv("LOG_LEVEL")
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New создаёт логгер вызова: текстовый handler поверх w (stderr),
// stdout остаётся чистым каналом данных. Флаг debug поднимает уровень
// до Debug независимо от LOG_LEVEL.
func New(debug bool, w io.Writer) *slog.Logger {
	level := LogLevel()
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
