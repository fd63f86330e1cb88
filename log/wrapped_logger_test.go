package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWrappedLoggerNil(t *testing.T) {
	logger := NewWrappedLogger(nil)
	require.Equal(t, nopLogger{}, logger.Logger)

	// Should be a no-op rather than a nil pointer dereference
	logger.Infof("hello %s", "world")
}

func TestWrappedLoggerZeroValue(t *testing.T) {
	var logger WrappedLogger

	require.NotPanics(t, func() { logger.Errorf("hello %s", "world") })
}

func TestWrappedLoggerLevels(t *testing.T) {
	type test struct {
		name  string
		level Level
		fn    func(w *WrappedLogger, format string, args ...any)
	}

	tests := []test{
		{name: "Trace", level: LevelTrace, fn: (*WrappedLogger).Tracef},
		{name: "Debug", level: LevelDebug, fn: (*WrappedLogger).Debugf},
		{name: "Info", level: LevelInfo, fn: (*WrappedLogger).Infof},
		{name: "Warning", level: LevelWarning, fn: (*WrappedLogger).Warnf},
		{name: "Error", level: LevelError, fn: (*WrappedLogger).Errorf},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := &mockLogger{}
			m.On("Log", test.level, "(Test) %d items", []any{42}).Once()

			logger := NewWrappedLogger(m)
			test.fn(&logger, "(Test) %d items", 42)

			m.AssertExpectations(t)
		})
	}
}

func TestWrappedLoggerPanicf(t *testing.T) {
	m := &mockLogger{}
	m.On("Log", LevelPanic, "(Test) %s", []any{"boom"}).Once()

	logger := NewWrappedLogger(m)

	require.PanicsWithValue(t, "(Test) boom", func() { logger.Panicf("(Test) %s", "boom") })
	m.AssertExpectations(t)
}
