// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger is the package-wide logger. Diagnostics go to stderr so stdout
// stays clean for generated listings.
var logger = newLogger(os.Stderr, log.InfoLevel, true, false)

// stdout receives Print and Println output.
var stdout io.Writer = os.Stdout

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug output, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps overrides the default (on). Nil means use the default.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

func newLogger(w io.Writer, level log.Level, timestamps, caller bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    caller,
		TimeFormat:      time.Kitchen,
	})
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = newLogger(os.Stderr, level, timestamps, cfg.Verbose)
}

// SetLogOutput redirects the logger, keeping its level.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetOutput redirects Print and Println.
func SetOutput(w io.Writer) {
	stdout = w
}

// ProjectLogger returns a child logger prefixed with the project name.
func ProjectLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}
