package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled lines to a file. The terminal belongs to the TUI, so
// nothing is ever written to stdout or stderr.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	filePath string
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Initialize opens a daily log file in logDir and installs it as the default logger.
func Initialize(logDir string, level Level) error {
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("hoverscroll-%s.log", time.Now().Format("2006-01-02")))
	// #nosec G304 -- logDir is the user's own cache directory
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	setDefault(&Logger{writer: file, level: level, filePath: logPath})
	return nil
}

// SetOutput installs a logger writing to w. Used by tests and by callers that
// already own a sink.
func SetOutput(w io.Writer, level Level) {
	setDefault(&Logger{writer: w, level: level})
}

func setDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

func log(level Level, format string, args ...interface{}) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.writer, "[%s] %s: %s\n", timestamp, level, msg)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	log(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	log(LevelError, format, args...)
}

// WithError logs err with context when err is non-nil.
func WithError(err error, context string) {
	if err != nil {
		log(LevelError, "%s: %v", context, err)
	}
}

// Close closes the log file and disables logging.
func Close() error {
	l := current()
	setDefault(nil)
	if l != nil && l.writer != nil {
		if closer, ok := l.writer.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}

// Path returns the current log file path, or "" when not logging to a file.
func Path() string {
	if l := current(); l != nil {
		return l.filePath
	}
	return ""
}
