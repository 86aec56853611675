// Package segmentedqueue provides a FIFO queue stored as a singly linked chain
// of fixed-capacity blocks. Insertion fills the tail block up to its capacity
// before a new block is linked behind it; removal drains the head block and
// drops it as soon as it is empty.
//
// An optional capacity limit bounds the total number of elements independently
// of the block capacity. Offer reports a full queue with false, Add with
// ErrQueueFull.
//
// A SegmentedQueue is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access themselves.
package segmentedqueue
