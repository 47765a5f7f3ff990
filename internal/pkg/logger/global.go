package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance.
// If no logger is set, it lazily installs a default production logger.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLogger, _ := zap.NewProduction()
		globalLogger = &ZapLogger{
			Logger: defaultLogger,
			sugar:  defaultLogger.Sugar(),
		}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}
