// Package log provides the logging interface used by the priority queue packages, applications supply their own
// implementation to receive diagnostic output.
package log

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}
