package logger

import (
	"sync"

	"github.com/philipp01105/scopelog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(handler.NewConsoleHandler(handler.ConsoleConfig{}))
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Info buffers an info message on the default logger
func Info(name, msg string) {
	Default().Info(name, msg)
}

// Warn buffers a warning message on the default logger
func Warn(name, msg string) {
	Default().Warn(name, msg)
}

// Error records an error on the default logger
func Error(in ErrorInput) error {
	return Default().Error(in)
}

// Errorf records a formatted error message on the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// Branch runs work in a new group of the default logger
func Branch(work func() error) error {
	return Default().Branch(work)
}

// Write flushes the default logger
func Write() {
	Default().Write()
}
