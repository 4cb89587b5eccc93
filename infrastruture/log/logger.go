// Package logger provides the colorized, component-prefixed logger used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	errorColor   = "\033[31m"
	colorReset   = "\033[0m"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	out    *log.Logger
}

// New creates a Logger for one component. color is an ANSI escape applied to
// the prefix; pass an empty string for plain output.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + colorReset
	}

	return &Logger{
		prefix: tag,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string) {
	l.print(infoColor, "INFO", msg)
}

// Warning logs a message at WARNING level.
func (l *Logger) Warning(msg string) {
	l.print(warningColor, "WARNING", msg)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string) {
	l.print(errorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s %s[%s]%s %s", l.prefix, color, level, colorReset, msg)
}
