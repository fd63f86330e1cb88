package log

import "github.com/stretchr/testify/mock"

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(level Level, format string, args ...any) {
	m.Called(level, format, args)
}
