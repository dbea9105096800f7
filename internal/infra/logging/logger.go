// Package logging provides file-based logging for loomshell.
// It outputs logs to both a global log file (logs/loomshell.log)
// and app-specific log files (logs/app-<id>.log) under the global directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/loomos/loomshell/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes categorized entries to log files.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	appFiles   map[string]*os.File
	now        func() time.Time
	dir        string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes under dir/logs.
// If dir is empty, logging is disabled (returns a no-op logger).
func New(dir string, level slog.Level) *Logger {
	return &Logger{
		dir:      dir,
		level:    level,
		now:      time.Now,
		appFiles: make(map[string]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openFile opens a log file for appending, creating the logs directory.
// Callers hold l.mu.
func (l *Logger) openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(l.logsDir(), 0o700); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *Logger) logsDir() string {
	return filepath.Dir(domain.GlobalLogPath(l.dir))
}

// ensureGlobalFile opens or returns the global log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}
	f, err := l.openFile(domain.GlobalLogPath(l.dir))
	if err != nil {
		return nil, err
	}
	l.globalFile = f
	return f, nil
}

// ensureAppFile opens or returns the app log file.
func (l *Logger) ensureAppFile(appID string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.appFiles[appID]; ok {
		return f, nil
	}
	f, err := l.openFile(domain.AppLogPath(l.dir, fileSafe(appID)))
	if err != nil {
		return nil, err
	}
	l.appFiles[appID] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.appFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.appFiles, id)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2026-01-02 09:32:51] [INFO] [app-inbox] [category] message
func formatLog(t time.Time, level slog.Level, appID, category, msg string) string {
	scope := "global"
	if appID != "" {
		scope = "app-" + appID
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// fileSafe replaces path separators so an app id always names one file.
func fileSafe(appID string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(appID)
}

// log writes a log entry to appropriate files based on appID.
// If appID is empty, logs only to global log.
// Otherwise logs to both global and app-specific log.
func (l *Logger) log(level slog.Level, appID, category, msg string) {
	if l.dir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return // Skip if below minimum level
	}

	entry := formatLog(l.now(), level, appID, category, msg)

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}

	if appID != "" {
		if af, err := l.ensureAppFile(appID); err == nil {
			_, _ = io.WriteString(af, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(appID, category, msg string) {
	l.log(slog.LevelInfo, appID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(appID, category, msg string) {
	l.log(slog.LevelDebug, appID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(appID, category, msg string) {
	l.log(slog.LevelWarn, appID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(appID, category, msg string) {
	l.log(slog.LevelError, appID, category, msg)
}
