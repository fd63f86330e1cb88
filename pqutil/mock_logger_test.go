package pqutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/couchbase/tools-pqueue/log"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(level log.Level, format string, args ...any) {
	m.Called(level, format, args)
}
