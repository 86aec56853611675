package segmentedqueue

import (
	"errors"
	"fmt"
	"iter"

	"github.com/timzifer/segmented_queue/internal/block"
	"github.com/timzifer/segmented_queue/internal/telemetry"
)

var (
	// ErrInvalidConfig is returned by New and NewBounded when a size is below 1.
	ErrInvalidConfig = errors.New("segmentedqueue: invalid configuration")
	// ErrQueueFull is returned by Add when the capacity limit has been reached.
	ErrQueueFull = errors.New("segmentedqueue: queue is full")
	// ErrIndexOutOfRange is returned by PeekAt for positions outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segmentedqueue: index out of range")
)

// Stats describes the block chain of a queue.
type Stats struct {
	// Blocks is the number of blocks currently linked into the chain.
	Blocks int
	// BlocksAllocated counts blocks linked into the chain since construction.
	BlocksAllocated uint64
	// BlocksReleased counts blocks dropped by Poll or Clear.
	BlocksReleased uint64
	// Rejected counts Offer and Add calls refused by the capacity limit.
	Rejected uint64
}

// SegmentedQueue is a FIFO queue backed by a chain of fixed-capacity blocks.
// The zero value is not usable; construct one with New or NewBounded.
type SegmentedQueue[T any] struct {
	head *block.Block[T]
	// tail is the growth point: the only block that accepts new elements.
	tail          *block.Block[T]
	size          int
	blocks        int
	blockCapacity int
	limit         int
	metrics       telemetry.BlockMetrics
}

// New creates an unbounded queue whose blocks hold up to blockCapacity
// elements each. A WithCapacityLimit option turns it into a bounded queue.
func New[T any](blockCapacity int, opts ...Option[T]) (*SegmentedQueue[T], error) {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	if blockCapacity < 1 {
		return nil, fmt.Errorf("%w: block capacity %d", ErrInvalidConfig, blockCapacity)
	}
	if o.limitSet && o.limit < 1 {
		return nil, fmt.Errorf("%w: capacity limit %d", ErrInvalidConfig, o.limit)
	}

	q := &SegmentedQueue[T]{
		blockCapacity: blockCapacity,
		limit:         o.limit,
	}

	for _, v := range o.initial {
		if err := q.Add(v); err != nil {
			return nil, fmt.Errorf("initial values: %w", err)
		}
	}

	return q, nil
}

// NewBounded creates a queue holding at most limit elements in total.
func NewBounded[T any](blockCapacity, limit int, opts ...Option[T]) (*SegmentedQueue[T], error) {
	return New(blockCapacity, append(opts[:len(opts):len(opts)], WithCapacityLimit[T](limit))...)
}

// Offer appends value to the back of the queue. It returns false without
// modifying the queue when the capacity limit has been reached.
func (q *SegmentedQueue[T]) Offer(value T) bool {
	if q.full() {
		q.metrics.Rejected()
		return false
	}
	q.appendValue(value)
	return true
}

// Add appends value to the back of the queue or returns ErrQueueFull.
func (q *SegmentedQueue[T]) Add(value T) error {
	if !q.Offer(value) {
		return fmt.Errorf("%w: limit %d", ErrQueueFull, q.limit)
	}
	return nil
}

// AddAll adds values in order. It stops at the first value refused by the
// capacity limit and returns false; values added before it stay queued.
func (q *SegmentedQueue[T]) AddAll(values ...T) bool {
	for _, v := range values {
		if err := q.Add(v); err != nil {
			return false
		}
	}
	return true
}

// AddSeq behaves like AddAll for the values produced by seq.
func (q *SegmentedQueue[T]) AddSeq(seq iter.Seq[T]) bool {
	for v := range seq {
		if err := q.Add(v); err != nil {
			return false
		}
	}
	return true
}

// Poll removes and returns the front element.
func (q *SegmentedQueue[T]) Poll() (zero T, _ bool) {
	if q.size == 0 {
		return zero, false
	}

	value, _ := q.head.RemoveFront()
	q.size--

	if q.head.Len() == 0 {
		q.releaseHead()
	}

	return value, true
}

// Peek returns the front element without removing it.
func (q *SegmentedQueue[T]) Peek() (zero T, _ bool) {
	if q.size == 0 {
		return zero, false
	}
	return q.head.PeekFirst()
}

// PeekBack returns the most recently added element without removing it.
func (q *SegmentedQueue[T]) PeekBack() (zero T, _ bool) {
	if q.size == 0 {
		return zero, false
	}
	value, err := q.tail.PeekLast()
	if err != nil {
		return zero, false
	}
	return value, true
}

// PeekAt returns the element at the zero-based position index, counted from
// the front of the queue.
func (q *SegmentedQueue[T]) PeekAt(index int) (zero T, _ error) {
	if index < 0 || index >= q.size {
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, q.size)
	}

	b := q.head
	for index >= b.Len() {
		index -= b.Len()
		b = b.Next()
	}
	return b.At(index), nil
}

// Len returns the number of queued elements.
func (q *SegmentedQueue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *SegmentedQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Clear drops the whole block chain.
func (q *SegmentedQueue[T]) Clear() {
	q.metrics.BlocksReleased(q.blocks)
	q.head = nil
	q.tail = nil
	q.size = 0
	q.blocks = 0
}

// Blocks returns the number of blocks currently linked into the chain.
func (q *SegmentedQueue[T]) Blocks() int {
	return q.blocks
}

// BlockCapacity returns the maximum number of elements a single block holds.
func (q *SegmentedQueue[T]) BlockCapacity() int {
	return q.blockCapacity
}

// Limit returns the capacity limit, or 0 for an unbounded queue.
func (q *SegmentedQueue[T]) Limit() int {
	return q.limit
}

// Snapshot returns a copy of the queued elements in FIFO order.
func (q *SegmentedQueue[T]) Snapshot() []T {
	if q.size == 0 {
		return nil
	}

	result := make([]T, 0, q.size)
	for b := q.head; b != nil; b = b.Next() {
		for v := range b.All() {
			result = append(result, v)
		}
	}
	return result
}

// Stats returns the block counters of this queue.
func (q *SegmentedQueue[T]) Stats() Stats {
	allocated, released, rejected := q.metrics.Snapshot()
	return Stats{
		Blocks:          q.blocks,
		BlocksAllocated: allocated,
		BlocksReleased:  released,
		Rejected:        rejected,
	}
}

func (q *SegmentedQueue[T]) full() bool {
	return q.limit > 0 && q.size >= q.limit
}

func (q *SegmentedQueue[T]) appendValue(value T) {
	if q.tail == nil {
		q.head = q.allocBlock()
		q.tail = q.head
	} else if q.tail.Full() {
		next := q.allocBlock()
		q.tail.SetNext(next)
		q.tail = next
	}

	q.tail.Append(value)
	q.size++
}

func (q *SegmentedQueue[T]) allocBlock() *block.Block[T] {
	q.blocks++
	q.metrics.BlockAllocated()
	return block.New[T](q.blockCapacity)
}

func (q *SegmentedQueue[T]) releaseHead() {
	next := q.head.Next()
	q.head.SetNext(nil)
	q.head = next
	if next == nil {
		q.tail = nil
	}
	q.blocks--
	q.metrics.BlocksReleased(1)
}
