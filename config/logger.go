package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// SetupLogger 按配置构建全局 slog 日志器
func SetupLogger(cfg LogConfig) *slog.Logger {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLogLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLogLevel 未识别的级别按 info 处理
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
