package segmentedqueue

import (
	"errors"
	"fmt"
	"iter"

	"github.com/timzifer/segmented_queue/internal/block"
)

var (
	// ErrExhausted is returned by Iterator.Next after the last element.
	ErrExhausted = errors.New("segmentedqueue: iterator exhausted")
	// ErrUnsupported is returned by Iterator.Remove. It wraps errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("segmentedqueue: remove during iteration: %w", errors.ErrUnsupported)
)

// Iterator walks a queue front to back exactly once. The outer cursor moves
// over blocks, the inner one over the elements of the current block.
//
// Mutating the queue while an Iterator is in use leaves its results undefined.
type Iterator[T any] struct {
	current *block.Block[T]
	offset  int
}

// Iterator returns a one-pass iterator positioned before the front element.
func (q *SegmentedQueue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{current: q.head}
}

// All returns a sequence over the queued elements in FIFO order. Each call
// starts a new Iterator.
func (q *SegmentedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := q.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// HasNext reports whether Next will return another element.
func (it *Iterator[T]) HasNext() bool {
	for it.current != nil && it.offset >= it.current.Len() {
		it.current = it.current.Next()
		it.offset = 0
	}
	return it.current != nil
}

// Next returns the next element or ErrExhausted.
func (it *Iterator[T]) Next() (zero T, _ error) {
	if !it.HasNext() {
		return zero, ErrExhausted
	}
	v := it.current.At(it.offset)
	it.offset++
	return v, nil
}

// Remove always fails; elements can only leave the queue through Poll.
func (it *Iterator[T]) Remove() error {
	return ErrUnsupported
}
