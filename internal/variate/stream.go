package variate

import (
	"math"
	"math/rand/v2"

	"github.com/wonny/brownian/internal/normal"
)

// MaxRaw is the largest value Stream.Raw can return
const MaxRaw = math.MaxUint64

// Stream is one worker's private pseudo-random source.
// It is owned by a single goroutine and never shared.
type Stream struct {
	worker int
	src    *rand.PCG
}

// NewStream creates the stream for worker from an already-mixed seed
func NewStream(seed uint64, worker int) *Stream {
	return &Stream{
		worker: worker,
		src:    rand.NewPCG(seed, uint64(worker)),
	}
}

// WorkerSeed mixes the run's base seed with the worker identity.
// Distinct workers below 2^16 always get distinct seeds.
func WorkerSeed(base uint64, worker int) uint64 {
	w := uint64(worker)
	return base ^ (w << 16) ^ (w * 12345)
}

// Worker returns the id of the owning worker
func (s *Stream) Worker() int {
	return s.worker
}

// Raw draws the next raw integer
func (s *Stream) Raw() uint64 {
	return s.src.Uint64()
}

// Uniform rescales the next raw draw into [0,1]
func (s *Stream) Uniform() float64 {
	return float64(s.Raw()) / float64(MaxRaw)
}

// Transform clamps u into the quantile domain and maps it to a standard-normal draw
func Transform(u float64) float64 {
	return normal.Quantile(normal.Clamp(u))
}
