package pqutil

import "github.com/couchbase/tools-pqueue/log"

// Options encapsulates the available options which can be used when creating a priority queue.
type Options struct {
	// Logger is used to report diagnostic information, for example, attempts to read from an empty queue. If omitted,
	// nothing will be logged.
	Logger log.Logger

	// LogPrefix is the prefix used for every logged line. Defaults to '(PQueue)'.
	LogPrefix string
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	if o.LogPrefix == "" {
		o.LogPrefix = "(PQueue)"
	}
}
