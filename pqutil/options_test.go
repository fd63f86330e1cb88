package pqutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-pqueue/log"
)

func TestOptionsDefaults(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var opts Options

		opts.defaults()

		require.Equal(t, Options{LogPrefix: "(PQueue)"}, opts)
	})

	t.Run("LogPrefix", func(t *testing.T) {
		opts := Options{LogPrefix: "(Scheduler)"}

		opts.defaults()

		require.Equal(t, Options{LogPrefix: "(Scheduler)"}, opts)
	})

	t.Run("Logger", func(t *testing.T) {
		logger := log.NewStdoutLogger()

		opts := Options{Logger: logger}

		opts.defaults()

		require.Equal(t, Options{Logger: logger, LogPrefix: "(PQueue)"}, opts)
	})
}
