// Package cli holds the terminal front-end shared by ulna's commands.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

// Logger writes labeled terminal output. Errors and warnings go to the error
// stream; info lines go to the output stream and only in verbose mode.
// Colors degrade automatically on non-terminal writers.
type Logger struct {
	out     io.Writer
	err     io.Writer
	verbose bool
}

// NewLogger builds a Logger over the given streams.
func NewLogger(out, err io.Writer, verbose bool) *Logger {
	return &Logger{out: out, err: err, verbose: verbose}
}

var (
	styleError   = color.New(color.Bold, color.FgRed)
	styleWarning = color.New(color.Bold, color.FgYellow)
	styleInfo    = color.New(color.Bold, color.FgBlue)
	styleHint    = color.New(color.Bold, color.FgMagenta)
)

// Error logs an error, one labeled line per message line.
func (l *Logger) Error(message string) { l.write(l.err, styleError, "Error", message) }

// Warn logs a warning.
func (l *Logger) Warn(message string) { l.write(l.err, styleWarning, "Warning", message) }

// Info logs detail output; dropped unless the logger is verbose.
func (l *Logger) Info(message string) {
	if !l.verbose {
		return
	}
	l.write(l.out, styleInfo, "Info", message)
}

// Hint logs a remediation hint.
func (l *Logger) Hint(message string) { l.write(l.out, styleHint, "Hint", message) }

func (l *Logger) write(w io.Writer, style color.Style, label, message string) {
	if message == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		fmt.Fprintf(w, "%s\t%s\n", style.Sprint(label+":"), line)
	}
}
