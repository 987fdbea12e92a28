package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
	out io.Writer
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l, out: w}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l, out: w}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l, out: f}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	return New(io.MultiWriter(writers...))
}

// Tee returns a logger that writes everywhere l does and also to w
func (l *Logger) Tee(w io.Writer) *Logger {
	tee := NewMultiLogger(l.out, w)
	tee.SetLevel(l.GetLevel())
	return tee
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// EntryAppended logs text appended to an org file
func (l *Logger) EntryAppended(path string, bytes int) {
	l.Info("entry appended",
		"file", path,
		"bytes", bytes)
}

// LargeWrite warns that a single append may not be atomic
func (l *Logger) LargeWrite(path string, bytes, limit int) {
	l.Warn("write might be non-atomic",
		"file", path,
		"bytes", bytes,
		"limit", limit)
}

// OutlineLoaded logs a parsed outline document
func (l *Logger) OutlineLoaded(path string, nodes int) {
	l.Debug("outline loaded",
		"file", path,
		"nodes", nodes)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(inboxFile string, level int, todo string) {
	l.Debug("config loaded",
		"inbox_file", inboxFile,
		"default_level", level,
		"default_todo", todo)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}
