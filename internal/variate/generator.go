// Package variate produces the VariateSeries consumed by the scan stage.
package variate

import (
	"fmt"
	"time"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/parallel"
	"github.com/wonny/brownian/pkg/logger"
)

// Config configures a Generator
type Config struct {
	Workers int    // fork-join workers (0 = NumCPU)
	Seed    uint64 // base seed (0 = wall clock, not reproducible)
}

// Generator fills a VariateSeries in parallel
type Generator struct {
	pool   *parallel.Pool
	seed   uint64
	now    func() time.Time
	logger *logger.Logger
}

// NewGenerator creates a generator
func NewGenerator(cfg Config, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		pool:   parallel.NewPool(cfg.Workers),
		seed:   cfg.Seed,
		now:    time.Now,
		logger: log.WithField("module", "variate"),
	}
}

// Generate draws n independent standard-normal variates.
// n is validated before any worker starts.
func (g *Generator) Generate(n int) (contracts.VariateSeries, error) {
	if err := contracts.ValidateLength(n); err != nil {
		return nil, err
	}

	base := g.baseSeed()
	out := make(contracts.VariateSeries, n)

	err := g.pool.For(n, func(worker int, r parallel.Range) error {
		fill(out[r.Lo:r.Hi], NewStream(WorkerSeed(base, worker), worker))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate variates: %w", err)
	}

	g.logger.WithFields(map[string]interface{}{
		"len":     n,
		"workers": g.pool.Workers(),
		"seeded":  g.seed != 0,
	}).Debug("Variates generated")

	return out, nil
}

// FromUniforms bypasses the random streams and transforms caller-supplied
// uniforms, so a series can be reproduced exactly.
func FromUniforms(uniforms []float64) (contracts.VariateSeries, error) {
	if err := contracts.ValidateLength(len(uniforms)); err != nil {
		return nil, err
	}

	out := make(contracts.VariateSeries, len(uniforms))
	for i, u := range uniforms {
		out[i] = Transform(u)
	}
	return out, nil
}

func (g *Generator) baseSeed() uint64 {
	if g.seed != 0 {
		return g.seed
	}
	return uint64(g.now().UnixNano())
}

// fill writes one worker's disjoint slice; s is private to the caller
func fill(dst []float64, s *Stream) {
	for i := range dst {
		dst[i] = Transform(s.Uniform())
	}
}
