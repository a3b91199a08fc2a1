package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

// Logger provides leveled logging (info/warning/error) to stdout/stderr
// and, when a log directory is configured, a daily-rotated log file.
type Logger struct {
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger
	mu         sync.Mutex
}

// New creates a Logger. An empty logDir keeps output on stdout/stderr only.
func New(logDir string) *Logger {
	var fileWriter io.Writer
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Fatalf("Failed to create log directory: %v", err)
		}
		rl, err := rotatelogs.New(
			filepath.Join(logDir, "server-%Y%m%d.log"),
			rotatelogs.WithLinkName(filepath.Join(logDir, "server.log")),
			rotatelogs.WithRotationTime(24*time.Hour),
			rotatelogs.WithMaxAge(7*24*time.Hour),
		)
		if err != nil {
			log.Fatalf("Failed to set up log rotation: %v", err)
		}
		fileWriter = rl
	}

	outWriter := io.Writer(os.Stdout)
	errWriter := io.Writer(os.Stderr)
	if fileWriter != nil {
		outWriter = io.MultiWriter(os.Stdout, fileWriter)
		errWriter = io.MultiWriter(os.Stderr, fileWriter)
	}

	return &Logger{
		infoLog:    log.New(outWriter, "INFO    ", log.Ldate|log.Ltime),
		warningLog: log.New(outWriter, "WARNING ", log.Ldate|log.Ltime),
		errorLog:   log.New(errWriter, "ERROR   ", log.Ldate|log.Ltime),
	}
}

// Info writes a formatted info-level log entry.
func (l *Logger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLog.Printf(format, v...)
}

// Warning writes a formatted warning-level log entry.
func (l *Logger) Warning(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLog.Printf(format, v...)
}

// Error writes a formatted error-level log entry.
func (l *Logger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLog.Printf(format, v...)
}
