package pqutil_test

import (
	"fmt"

	"github.com/couchbase/tools-pqueue/pqutil"
)

func ExamplePriorityQueue() {
	queue := pqutil.NewPriorityQueue[string]()

	queue.Enqueue("A", 2)
	queue.Enqueue("B", 1)
	queue.Enqueue("C", 1)

	for !queue.Empty() {
		value, _ := queue.Dequeue()
		fmt.Println(value)
	}

	_, err := queue.Dequeue()
	fmt.Println(err)

	// Output:
	// B
	// C
	// A
	// dequeue: attempting to dequeue an empty priority queue
}
