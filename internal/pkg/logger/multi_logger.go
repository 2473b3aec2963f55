package logger

import (
	"errors"
	"os"
)

// MultiLogger forwards every message to each of its loggers in order.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that writes to all of the given loggers.
func NewMultiLogger(loggers ...Logger) Logger {
	return &MultiLogger{loggers: loggers}
}

// Debug logs a debug message to every logger.
func (m *MultiLogger) Debug(args ...interface{}) {
	for _, l := range m.loggers {
		l.Debug(args...)
	}
}

// Info logs an informational message to every logger.
func (m *MultiLogger) Info(args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(args...)
	}
}

// Warn logs a warning message to every logger.
func (m *MultiLogger) Warn(args ...interface{}) {
	for _, l := range m.loggers {
		l.Warn(args...)
	}
}

// Error logs an error message to every logger.
func (m *MultiLogger) Error(args ...interface{}) {
	for _, l := range m.loggers {
		l.Error(args...)
	}
}

// Fatal logs to every logger, closes them and exits.
func (m *MultiLogger) Fatal(args ...interface{}) {
	m.Error(args...)
	_ = m.Close()
	os.Exit(1)
}

// Panic logs to every logger and panics.
func (m *MultiLogger) Panic(args ...interface{}) {
	m.Error(args...)
	panic(formatArgs(args...))
}

// With derives every wrapped logger with the given attributes.
func (m *MultiLogger) With(args ...interface{}) Logger {
	loggers := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		loggers[i] = l.With(args...)
	}
	return &MultiLogger{loggers: loggers}
}

// Close closes every wrapped logger that holds resources.
func (m *MultiLogger) Close() error {
	var errs []error
	for _, l := range m.loggers {
		if closer, ok := l.(interface{ Close() error }); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
