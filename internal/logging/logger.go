// Package logging provides the leveled console logger used by every stage of
// a run. Lines carry a timestamp and level tag; ERROR goes to stderr and the
// rest to stdout. An optional log file receives the same lines without color.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/metagetter/internal/config"
	"github.com/backmassage/metagetter/internal/term"
	"github.com/fatih/color"
)

// Level colors. Printing through a *color.Color is plain text when
// term.Configure has disabled colors.
var (
	infoColor    = color.New(color.FgHiBlue, color.Bold)
	successColor = color.New(color.FgHiGreen, color.Bold)
	warnColor    = color.New(color.FgHiYellow, color.Bold)
	errorColor   = color.New(color.FgHiRed, color.Bold)
	debugColor   = color.New(color.FgHiCyan, color.Bold)
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	file   *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile in
// append mode. Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{stdout: os.Stdout, stderr: os.Stderr}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// NewWriterLogger returns a Logger that writes every level to w, uncolored
// unless colors are enabled globally. Used by tests to capture output.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{stdout: w, stderr: w}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.stdout
	if level == "ERROR" {
		out = l.stderr
	}
	_, _ = fmt.Fprintf(out, "%s %s %s\n", ts, c.Sprint("["+level+"]"), text)
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", infoColor, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", successColor, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", warnColor, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", errorColor, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", debugColor, fmt.Sprintf(format, args...))
}
