// Package block provides the fixed-capacity segment used to build the chain
// behind a segmented queue. A Block only manages its own ordered run of
// elements and a single forward link; chain growth and release policy belong
// to the owning queue.
package block
