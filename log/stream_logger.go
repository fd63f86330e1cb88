package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StreamLogger writes a single line per log statement to the given writer, each line is prefixed with the time and the
// level of the statement.
//
// NOTE: Write errors are ignored, logging must never change the behavior of the caller.
type StreamLogger struct {
	w   io.Writer
	now func() time.Time
}

// NewStreamLogger returns a logger which writes to the given writer.
func NewStreamLogger(w io.Writer) *StreamLogger {
	return &StreamLogger{w: w, now: time.Now}
}

// NewStdoutLogger returns a logger which prints all logs to the terminal.
func NewStdoutLogger() *StreamLogger {
	return NewStreamLogger(os.Stdout)
}

// Log writes the formatted message to the underlying writer.
func (s *StreamLogger) Log(level Level, format string, args ...any) {
	fmt.Fprintf(s.w, "%s %s: %s\n", s.now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
