package block

import (
	"errors"
	"fmt"
	"iter"
)

// ErrEmpty is returned by PeekLast when the block holds no elements.
var ErrEmpty = errors.New("block: no such element")

// Block is a capacity-bounded ordered sequence of elements with a link to the
// next block in the chain.
type Block[T any] struct {
	items []T
	next  *Block[T]
}

// New allocates an empty block holding at most capacity elements.
func New[T any](capacity int) *Block[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("block: invalid capacity %d", capacity))
	}
	return &Block[T]{items: make([]T, 0, capacity)}
}

// Append stores value as the new last element. It reports false without
// modifying the block once the block is full.
func (b *Block[T]) Append(value T) bool {
	if len(b.items) == cap(b.items) {
		return false
	}
	b.items = append(b.items, value)
	return true
}

// RemoveFront removes and returns the first element.
func (b *Block[T]) RemoveFront() (zero T, _ bool) {
	if len(b.items) == 0 {
		return zero, false
	}

	value := b.items[0]
	last := len(b.items) - 1
	copy(b.items, b.items[1:])
	b.items[last] = zero
	b.items = b.items[:last]

	return value, true
}

// PeekFirst returns the first element without removing it.
func (b *Block[T]) PeekFirst() (zero T, _ bool) {
	if len(b.items) == 0 {
		return zero, false
	}
	return b.items[0], true
}

// PeekLast returns the most recently appended element.
func (b *Block[T]) PeekLast() (zero T, _ error) {
	if len(b.items) == 0 {
		return zero, ErrEmpty
	}
	return b.items[len(b.items)-1], nil
}

// At returns the element at offset i. Offsets outside [0, Len()) panic.
func (b *Block[T]) At(i int) T {
	if i < 0 || i >= len(b.items) {
		panic(fmt.Sprintf("block: offset %d out of range [0,%d)", i, len(b.items)))
	}
	return b.items[i]
}

func (b *Block[T]) Len() int { return len(b.items) }

func (b *Block[T]) Cap() int { return cap(b.items) }

func (b *Block[T]) Full() bool { return len(b.items) == cap(b.items) }

// Clear drops all elements. The forward link is left untouched.
func (b *Block[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}

// All yields the held elements in insertion order.
func (b *Block[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (b *Block[T]) Next() *Block[T] { return b.next }

func (b *Block[T]) SetNext(next *Block[T]) { b.next = next }
