// Package gbm evaluates the closed-form Geometric Brownian Motion path
//
//	S(t) = S0 · exp(drift_mean·t + volatility_day·W(t)),  t = i+1
//
// from a Wiener path.
//
// Precision: everything is IEEE-754 float64, including exp. There is no
// extended-precision accumulation, so results are bit-for-bit reproducible
// for identical inputs on the same platform.
package gbm

import (
	"fmt"
	"math"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/parallel"
	"github.com/wonny/brownian/pkg/logger"
)

// Evaluator PathEvaluator
type Evaluator struct {
	pool   *parallel.Pool
	logger *logger.Logger
}

// NewEvaluator creates an evaluator
func NewEvaluator(workers int, log *logger.Logger) *Evaluator {
	if log == nil {
		log = logger.Nop()
	}
	return &Evaluator{
		pool:   parallel.NewPool(workers),
		logger: log.WithField("module", "gbm"),
	}
}

// Price evaluates one step; day is the zero-based index
func Price(s0 float64, d Derived, day int, wiener float64) float64 {
	exponent := d.DriftMean*float64(day+1) + d.VolatilityDay*wiener
	return s0 * math.Exp(exponent)
}

// Evaluate maps a Wiener path onto a price path.
// Each index depends only on the same input index, so workers never share writes.
func (e *Evaluator) Evaluate(p Parameters, w contracts.WienerSeries) (contracts.PricePath, error) {
	if err := contracts.ValidateLength(len(w)); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.NegativeVolatility() {
		e.logger.Warnf("Negative volatility %g%% accepted; the Wiener path is mirrored", p.VolatilityYear)
	}

	d := p.Derive()
	out := make(contracts.PricePath, len(w))

	err := e.pool.For(len(w), func(_ int, r parallel.Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			price := Price(p.S0, d, i, w[i])
			// exp saturates to 0 or +Inf only far outside realistic inputs
			if !(price > 0) || math.IsInf(price, 0) {
				return fmt.Errorf("%w: price at day %d is not representable (%v)",
					contracts.ErrInvalidParameters, i, price)
			}
			out[i] = price
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.WithFields(map[string]interface{}{
		"len":        len(w),
		"drift_mean": d.DriftMean,
		"vol_day":    d.VolatilityDay,
	}).Debug("Price path evaluated")

	return out, nil
}
