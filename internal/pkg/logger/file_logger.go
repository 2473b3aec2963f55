package logger

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/config"
)

// FileLogger is an implementation of Logger that writes JSON lines to a rotating file.
//
// Size-based rotation is handled by lumberjack. Hourly and daily rotation is
// driven by a goroutine that forces a rotation at each boundary; it runs until
// Close is called.
type FileLogger struct {
	logger    *slog.Logger
	writer    *lumberjack.Logger
	done      chan struct{}
	closeOnce *sync.Once
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, rotation string, maxSizeMB int, maxFiles int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxFiles,
		LocalTime:  true,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewJSONHandler(writer, opts)

	l := &FileLogger{
		logger:    slog.New(handler),
		writer:    writer,
		done:      make(chan struct{}),
		closeOnce: &sync.Once{},
	}

	if rotation == config.LogRotationHourly || rotation == config.LogRotationDaily {
		go l.rotateOnSchedule(rotation)
	}

	return l
}

func (l *FileLogger) rotateOnSchedule(rotation string) {
	for {
		timer := time.NewTimer(time.Until(nextRotation(time.Now(), rotation)))
		select {
		case <-timer.C:
			if err := l.writer.Rotate(); err != nil {
				l.logger.Error("log rotation failed: " + err.Error())
			}
		case <-l.done:
			timer.Stop()
			return
		}
	}
}

// nextRotation returns the next hour or midnight boundary after now, in now's location.
func nextRotation(now time.Time, rotation string) time.Time {
	y, m, d := now.Date()
	switch rotation {
	case config.LogRotationHourly:
		return time.Date(y, m, d, now.Hour()+1, 0, 0, 0, now.Location())
	case config.LogRotationDaily:
		return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// Close stops scheduled rotation and closes the underlying file.
func (l *FileLogger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		err = l.writer.Close()
	})
	return err
}

// Debug logs a debug message.
func (l *FileLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *FileLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *FileLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *FileLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *FileLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	_ = l.Close()
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *FileLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

// With returns a file logger carrying the given attributes. It shares the
// underlying file with l, so closing either closes both.
func (l *FileLogger) With(args ...interface{}) Logger {
	return &FileLogger{
		logger:    l.logger.With(args...),
		writer:    l.writer,
		done:      l.done,
		closeOnce: l.closeOnce,
	}
}
