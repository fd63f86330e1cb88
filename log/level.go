package log

// Level is a type alias which is used to indicate the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is the most verbose log level, used for internal bookkeeping such as the number of items released by
	// a call to 'Clear'.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained events which are useful when debugging misuse of a queue, for example, popping
	// from an empty queue.
	LevelDebug

	// LevelInfo includes informational messages.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the caller to continue running.
	LevelError

	// LevelPanic is only used immediately before a panic.
	LevelPanic
)

// String returns the four character tag used for the level when writing log lines.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return "UNKN"
}
