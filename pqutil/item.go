package pqutil

// Item encapsulates a value and its priority, it's used when items are handed out of the queue in bulk.
type Item[T any] struct {
	Value    T
	Priority float64
}
