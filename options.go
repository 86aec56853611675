package segmentedqueue

type options[T any] struct {
	limit    int
	limitSet bool
	initial  []T
}

// Option configures a SegmentedQueue at construction time.
type Option[T any] func(*options[T])

// WithCapacityLimit bounds the total number of elements across all blocks.
func WithCapacityLimit[T any](limit int) Option[T] {
	return func(opts *options[T]) {
		opts.limit = limit
		opts.limitSet = true
	}
}

// WithInitial inserts values, in order, right after construction.
func WithInitial[T any](values ...T) Option[T] {
	return func(opts *options[T]) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
