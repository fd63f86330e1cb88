package log

// nopLogger discards everything, it's used whenever no logger has been provided.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}
