package history

import "github.com/gammazero/deque"

// Queue is a fixed-capacity FIFO buffer. Pushing onto a full queue evicts
// the oldest element. It is not safe for concurrent use; the pipeline is
// synchronous with a single producer per queue.
type Queue[T any] struct {
	capacity int
	items    deque.Deque[T]
}

// NewQueue creates a queue holding at most capacity elements. A capacity
// below one is treated as one.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{capacity: capacity}
}

// Push appends v, evicting the oldest element if the queue is full.
func (q *Queue[T]) Push(v T) {
	if q.items.Len() == q.capacity {
		q.items.PopFront()
	}
	q.items.PushBack(v)
}

// Values returns the contents oldest first.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.items.Len())
	for i := range out {
		out[i] = q.items.At(i)
	}
	return out
}

// Len returns the number of buffered elements.
func (q *Queue[T]) Len() int {
	return q.items.Len()
}

// Cap returns the configured capacity.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Latest returns the most recently pushed element. ok is false when the
// queue is empty.
func (q *Queue[T]) Latest() (v T, ok bool) {
	if q.items.Len() == 0 {
		return v, false
	}
	return q.items.Back(), true
}
