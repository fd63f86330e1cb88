// Package pqutil exposes a generic priority queue implemented using a sorted singly linked list.
package pqutil

import "github.com/couchbase/tools-pqueue/log"

// PriorityQueue implements a priority queue which accepts a generic value with a floating point priority. Values with
// the lowest priority are dequeued first, where multiple values have the same priority, they're dequeued in the order
// they were enqueued.
//
// The zero value is an empty queue which doesn't log.
//
// NOTE: The queue is kept sorted as values are enqueued, this means 'Enqueue' is O(n) in the length of the queue whilst
// 'Dequeue' and 'Peek' are O(1). The 'PriorityQueue' is not safe for concurrent use and needs to be wrapped in a lock to
// be shared safely between goroutines.
type PriorityQueue[T any] struct {
	opts   Options
	logger log.WrappedLogger

	head *cell[T]

	// tail is the last cell in the chain, it's only used to append in constant time.
	tail *cell[T]

	count int
}

// NewPriorityQueue creates a new empty priority queue, no memory is allocated for cells until the first value is
// enqueued.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return NewPriorityQueueWithOptions[T](Options{})
}

// NewPriorityQueueWithOptions creates a new empty priority queue using the given options.
func NewPriorityQueueWithOptions[T any](opts Options) *PriorityQueue[T] {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	return &PriorityQueue[T]{opts: opts, logger: log.NewWrappedLogger(opts.Logger)}
}

// Enqueue adds the given value to the queue, it's placed behind every value with a lower or equal priority.
func (p *PriorityQueue[T]) Enqueue(value T, priority float64) {
	link := &p.head

	// Nothing in the queue has a higher priority than the tail, so we can skip the walk and append
	if p.tail != nil && !(priority < p.tail.priority) {
		link = &p.tail.next
	}

	// Stop at the first cell with a strictly higher priority, skipping equal priorities keeps the ordering FIFO
	for *link != nil && !(priority < (*link).priority) {
		link = &(*link).next
	}

	c := &cell[T]{value: value, priority: priority, next: *link}
	*link = c

	if c.next == nil {
		p.tail = c
	}

	p.count++
}

// Dequeue removes and returns the value with the lowest priority, an 'EmptyQueueError' is returned if the queue is
// empty.
func (p *PriorityQueue[T]) Dequeue() (T, error) {
	if p.Empty() {
		return *new(T), p.emptyError(OpDequeue)
	}

	return p.pop().value, nil
}

// Peek returns the value which would be returned by 'Dequeue' without removing it from the queue.
func (p *PriorityQueue[T]) Peek() (T, error) {
	if p.Empty() {
		return *new(T), p.emptyError(OpPeek)
	}

	return p.head.value, nil
}

// PeekPriority returns the priority of the value which would be returned by 'Dequeue'.
func (p *PriorityQueue[T]) PeekPriority() (float64, error) {
	if p.Empty() {
		return 0, p.emptyError(OpPeekPriority)
	}

	return p.head.priority, nil
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return p.count
}

// Empty returns a boolean indicating whether the queue contains no items.
func (p *PriorityQueue[T]) Empty() bool {
	return p.count == 0
}

// Clear removes all items from the queue.
func (p *PriorityQueue[T]) Clear() {
	n := p.count

	for c := p.head; c != nil; {
		next := c.next
		c.next = nil
		c = next
	}

	p.head, p.tail, p.count = nil, nil, 0

	if n > 0 {
		p.logger.Tracef("%s Cleared %d items", p.opts.LogPrefix, n)
	}
}

// Clone returns a deep copy of the queue, the returned queue uses the same options but shares no cells meaning either
// queue may be modified without affecting the other.
//
// NOTE: Values are copied by assignment, if 'T' is a pointer (or contains one) the pointed to data is still shared.
func (p *PriorityQueue[T]) Clone() *PriorityQueue[T] {
	clone := NewPriorityQueueWithOptions[T](p.opts)
	clone.copyFrom(p)

	return clone
}

// Assign replaces the contents of the queue with a deep copy of the contents of src, the queue retains its own
// options. Assigning a queue to itself is a no-op and a <nil> src clears the queue.
func (p *PriorityQueue[T]) Assign(src *PriorityQueue[T]) {
	if p == src {
		return
	}

	p.Clear()

	if src == nil {
		return
	}

	p.copyFrom(src)

	p.logger.Tracef("%s Assigned %d items", p.opts.LogPrefix, p.count)
}

// Items returns the items in the queue, in the order they would be dequeued, without modifying the queue. Returns <nil>
// if the queue is empty.
func (p *PriorityQueue[T]) Items() []Item[T] {
	if p.Empty() {
		return nil
	}

	items := make([]Item[T], 0, p.count)

	for c := p.head; c != nil; c = c.next {
		items = append(items, c.item())
	}

	return items
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
//
// NOTE: The item passed to the failing function call has already been removed from the queue.
func (p *PriorityQueue[T]) Drain(fn func(item Item[T]) error) error {
	for !p.Empty() {
		if err := fn(p.pop().item()); err != nil {
			p.logger.Debugf("%s Stopped draining with %d items remaining: %v", p.opts.LogPrefix, p.count, err)
			return err
		}
	}

	return nil
}

// pop unlinks and returns the head of the chain, the queue must not be empty.
func (p *PriorityQueue[T]) pop() *cell[T] {
	c := p.head

	p.head = c.next
	c.next = nil

	if p.head == nil {
		p.tail = nil
	}

	p.count--

	return c
}

// copyFrom duplicates the chain of src cell by cell, the queue must be empty.
func (p *PriorityQueue[T]) copyFrom(src *PriorityQueue[T]) {
	link := &p.head

	for c := src.head; c != nil; c = c.next {
		dup := &cell[T]{value: c.value, priority: c.priority}

		*link = dup
		link = &dup.next
		p.tail = dup
	}

	p.count = src.count
}

// emptyError logs and returns the error for an attempt to read from the queue whilst it's empty.
func (p *PriorityQueue[T]) emptyError(op string) error {
	p.logger.Debugf("%s (%s) Attempted to read from an empty queue", p.opts.LogPrefix, op)

	return &EmptyQueueError{Op: op}
}
