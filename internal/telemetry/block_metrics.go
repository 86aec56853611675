package telemetry

import "sync/atomic"

// BlockMetrics counts block churn and rejected insertions of a single queue.
// The zero value is ready to use.
type BlockMetrics struct {
	allocated atomic.Uint64
	released  atomic.Uint64
	rejected  atomic.Uint64
}

// BlockAllocated records a new block linked into a chain.
func (m *BlockMetrics) BlockAllocated() {
	m.allocated.Add(1)
}

// BlocksReleased records n blocks dropped from a chain.
func (m *BlockMetrics) BlocksReleased(n int) {
	if n <= 0 {
		return
	}
	m.released.Add(uint64(n))
}

// Rejected records an insertion refused because the queue was full.
func (m *BlockMetrics) Rejected() {
	m.rejected.Add(1)
}

// Snapshot returns the collected values.
func (m *BlockMetrics) Snapshot() (allocated, released, rejected uint64) {
	return m.allocated.Load(), m.released.Load(), m.rejected.Load()
}

