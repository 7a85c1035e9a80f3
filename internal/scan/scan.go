// Package scan turns a VariateSeries into its Wiener path with a
// double-buffered, log-depth inclusive prefix sum (Hillis–Steele).
//
// Each pass reads only the source buffer and writes each index of the
// destination buffer exactly once, so a pass needs no locks. The pool's
// barrier separates passes; after it the two buffers swap roles.
package scan

import (
	"fmt"
	"math/bits"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/parallel"
	"github.com/wonny/brownian/pkg/logger"
)

// Scanner computes inclusive prefix sums on a fork-join pool
type Scanner struct {
	pool   *parallel.Pool
	logger *logger.Logger
}

// NewScanner creates a Scanner; workers < 1 means runtime.NumCPU()
func NewScanner(workers int, log *logger.Logger) *Scanner {
	if log == nil {
		log = logger.Nop()
	}
	return &Scanner{
		pool:   parallel.NewPool(workers),
		logger: log.WithField("module", "scan"),
	}
}

// Passes returns ceil(log2 n), with a single pass for n = 1
func Passes(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// buffers holds the two scan buffers. source is complete and read-only
// for the running pass; destination is being written.
type buffers struct {
	source      []float64
	destination []float64
}

func newBuffers(in []float64) *buffers {
	b := &buffers{
		source:      make([]float64, len(in)),
		destination: make([]float64, len(in)),
	}
	copy(b.source, in)
	return b
}

// swap may only be called after the pass barrier
func (b *buffers) swap() {
	b.source, b.destination = b.destination, b.source
}

// Scan returns the inclusive prefix sum of in. in is not modified.
func (s *Scanner) Scan(in contracts.VariateSeries) (contracts.WienerSeries, error) {
	n := len(in)
	if err := contracts.ValidateLength(n); err != nil {
		return nil, err
	}

	bufs := newBuffers(in)
	passes := Passes(n)

	step := 1
	for pass := 0; pass < passes; pass++ {
		if err := s.pass(bufs, step); err != nil {
			return nil, fmt.Errorf("scan pass %d (step %d): %w", pass, step, err)
		}
		bufs.swap()
		s.logger.Debugf("Scan pass %d/%d done (step %d)", pass+1, passes, step)
		step <<= 1
	}

	s.logger.WithFields(map[string]interface{}{
		"len":     n,
		"passes":  passes,
		"workers": s.pool.Workers(),
	}).Debug("Prefix sum computed")

	// The last pass wrote into what is now the source buffer.
	return contracts.WienerSeries(bufs.source), nil
}

// pass runs one Hillis–Steele step; pool.For returns only after its barrier
func (s *Scanner) pass(bufs *buffers, step int) error {
	src, dst := bufs.source, bufs.destination
	return s.pool.For(len(src), func(_ int, r parallel.Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			if i-step >= 0 {
				dst[i] = src[i] + src[i-step]
			} else {
				dst[i] = src[i]
			}
		}
		return nil
	})
}
