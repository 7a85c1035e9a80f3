// Package parallel provides the data-parallel fork-join loop used by every stage.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range is a half-open index range [Lo, Hi) owned by exactly one worker
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of indices in the range
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Split partitions [0,n) into at most workers contiguous, disjoint ranges.
// Sizes differ by at most one; earlier ranges take the remainder.
func Split(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	ranges := make([]Range, workers)
	base, rem := n/workers, n%workers
	lo := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		ranges[w] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}
	return ranges
}

// Pool runs fork-join loops with a fixed number of workers
type Pool struct {
	workers int
}

// NewPool creates a pool; workers < 1 means runtime.NumCPU()
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Workers returns the configured pool size
func (p *Pool) Workers() int {
	return p.workers
}

// For splits [0,n) with Split and runs body once per range concurrently.
// It returns only after every range has finished (the barrier), with the
// first error any body returned.
func (p *Pool) For(n int, body func(worker int, r Range) error) error {
	var g errgroup.Group
	for w, r := range Split(n, p.workers) {
		g.Go(func() error {
			return body(w, r)
		})
	}
	return Barrier(&g)
}

// Barrier blocks until every goroutine started on g has returned.
// Nothing written inside a fork-join pass may be read before it.
func Barrier(g *errgroup.Group) error {
	return g.Wait()
}
