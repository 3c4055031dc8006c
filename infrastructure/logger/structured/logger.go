// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Writes text or JSON to stdout, or to a lumberjack rotated file when configured

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level, format and destination
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // rotated log file; empty logs to stdout
}

// Logger implements interfaces.Logger on a logrus logger
type Logger struct {
	log    *logrus.Logger
	closer io.Closer
}

// New creates a logger from options. Unknown levels fall back to info.
func New(opts Options) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger := &Logger{log: l}
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		l.SetOutput(rotated)
		logger.closer = rotated
	} else {
		l.SetOutput(os.Stdout)
	}

	return logger
}

// NewWithWriter creates a JSON logger writing to w
func NewWithWriter(w io.Writer, level string) *Logger {
	l := New(Options{Level: level, Format: "json"})
	l.SetOutput(w)
	return l
}

// SetOutput redirects log output to w
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

// Writer returns a writer that logs each line at info level, for net/http's ErrorLog
func (l *Logger) Writer() *io.PipeWriter {
	return l.log.Writer()
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
