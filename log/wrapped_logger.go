package log

import "fmt"

// WrappedLogger embeds a Logger and exposes a formatting function per level, e.g. 'Tracef', 'Debugf' etc.
type WrappedLogger struct {
	Logger
}

// NewWrappedLogger returns a WrappedLogger for the given logger, a <nil> logger results in all output being discarded.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger}
}

// Tracef logs the provided information at the trace level.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.log(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.log(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func (w *WrappedLogger) Infof(format string, args ...any) {
	w.log(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.log(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.log(LevelError, format, args...)
}

// Panicf logs the provided information at the panic level, then panics with the formatted message.
func (w *WrappedLogger) Panicf(format string, args ...any) {
	w.log(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// log forwards to the embedded logger, a zero value WrappedLogger behaves like one wrapping the no-op logger.
func (w *WrappedLogger) log(level Level, format string, args ...any) {
	if w.Logger == nil {
		return
	}

	w.Logger.Log(level, format, args...)
}
