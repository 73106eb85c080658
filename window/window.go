// Package window implements a count-based sliding window over emitted
// values. Unlike a time window, membership is determined purely by arrival
// order: the window holds the most recent N values and slides by one on
// every push.
package window

import "github.com/gammazero/deque"

// Window is a sliding window of the most recent Size values. It does not
// produce contents until Size values have been pushed; from then on every
// push produces a full window. Size one degenerates to pass-through.
type Window[T any] struct {
	size  int
	items deque.Deque[T]
}

// New creates a window of the given size. A size below one is treated
// as one.
func New[T any](size int) *Window[T] {
	if size < 1 {
		size = 1
	}
	return &Window[T]{size: size}
}

// Push adds v, evicting the oldest value once the window is full. It
// returns the window contents oldest first, and whether the window is
// full; contents are nil until the first full window.
func (w *Window[T]) Push(v T) ([]T, bool) {
	if w.items.Len() == w.size {
		w.items.PopFront()
	}
	w.items.PushBack(v)

	if w.items.Len() < w.size {
		return nil, false
	}
	out := make([]T, w.size)
	for i := range out {
		out[i] = w.items.At(i)
	}
	return out, true
}

// Size returns the configured window size.
func (w *Window[T]) Size() int {
	return w.size
}

// Len returns the number of values currently held.
func (w *Window[T]) Len() int {
	return w.items.Len()
}
