package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}

// NewLogger creates the diagnostic logger for a command, writing to output.
// Debug messages are only emitted when verbose is true.
func NewLogger(name string, output io.Writer, verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: output,
	})
}
