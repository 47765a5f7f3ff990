package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is our application logger that supports console and file
// outputs with structured JSON encoding.
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// NewZapLogger creates a new application logger from configuration.
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(config.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	var file *os.File
	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		f, err := os.OpenFile(config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(f),
			level,
		))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	return &ZapLogger{
		Logger:   zapLogger,
		sugar:    zapLogger.Sugar(),
		filePath: config.FilePath,
		file:     file,
	}, nil
}

// Sugar returns the sugared logger for printf-style logging
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes buffered entries and closes the log file if one is open.
func (l *ZapLogger) Close() error {
	_ = l.Logger.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
