package pqutil

import (
	"errors"
	"fmt"
)

const (
	// OpDequeue identifies a failed call to 'Dequeue'.
	OpDequeue = "dequeue"

	// OpPeek identifies a failed call to 'Peek'.
	OpPeek = "peek"

	// OpPeekPriority identifies a failed call to 'PeekPriority'.
	OpPeekPriority = "peekPriority"
)

// ErrEmptyQueue is matched by every error returned when attempting to read from an empty priority queue.
var ErrEmptyQueue = errors.New("priority queue is empty")

// EmptyQueueError is returned by 'Dequeue', 'Peek' and 'PeekPriority' when the queue contains no items.
//
// NOTE: This indicates misuse by the caller, check 'Empty' before reading from the queue.
type EmptyQueueError struct {
	// Op is the operation which was attempted, one of the 'Op' constants.
	Op string
}

func (e *EmptyQueueError) Error() string {
	verb := e.Op
	if verb == OpPeekPriority {
		verb = OpPeek
	}

	return fmt.Sprintf("%s: attempting to %s an empty priority queue", e.Op, verb)
}

// Is allows the use of 'errors.Is(err, ErrEmptyQueue)'.
func (e *EmptyQueueError) Is(target error) bool {
	return target == ErrEmptyQueue
}
