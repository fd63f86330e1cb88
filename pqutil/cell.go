package pqutil

// cell is a single link in the queue's chain, each cell is only ever referenced by its predecessor (or the queue
// itself for the first cell) and the queue's tail.
type cell[T any] struct {
	value    T
	priority float64
	next     *cell[T]
}

// item returns the value/priority pair stored in the cell.
func (c *cell[T]) item() Item[T] {
	return Item[T]{Value: c.value, Priority: c.priority}
}
