package gbm

import (
	"fmt"
	"math"

	"github.com/wonny/brownian/internal/contracts"
)

// TradingDays per year
const TradingDays = 252

// Parameters are the annualised inputs, in percent
// ⭐ SSOT: immutable for one evaluate run
type Parameters struct {
	DriftYear      float64 `json:"drift_year"`      // annual drift (%)
	VolatilityYear float64 `json:"volatility_year"` // annual volatility (%)
	S0             float64 `json:"s0"`              // initial price
}

// Derived holds the per-day parameters
type Derived struct {
	DriftDay      float64 `json:"drift_day"`
	VolatilityDay float64 `json:"volatility_day"`
	DriftMean     float64 `json:"drift_mean"` // drift_day - σ_day²/2
}

// Validate rejects parameters that would break price positivity or finiteness.
// Negative volatility passes; see NegativeVolatility.
func (p Parameters) Validate() error {
	if !isFinite(p.DriftYear) {
		return fmt.Errorf("%w: drift %v is not finite", contracts.ErrInvalidParameters, p.DriftYear)
	}
	if !isFinite(p.VolatilityYear) {
		return fmt.Errorf("%w: volatility %v is not finite", contracts.ErrInvalidParameters, p.VolatilityYear)
	}
	if !isFinite(p.S0) || p.S0 <= 0 {
		return fmt.Errorf("%w: initial price must be positive and finite, got %v", contracts.ErrInvalidParameters, p.S0)
	}
	return nil
}

// NegativeVolatility reports a volatility that is mathematically usable
// but has no economic meaning
func (p Parameters) NegativeVolatility() bool {
	return p.VolatilityYear < 0
}

// Derive converts the yearly percentages into per-step parameters
func (p Parameters) Derive() Derived {
	driftDay := p.DriftYear / (100.0 * TradingDays)
	volDay := p.VolatilityYear / (100.0 * math.Sqrt(TradingDays))
	return Derived{
		DriftDay:      driftDay,
		VolatilityDay: volDay,
		DriftMean:     driftDay - 0.5*volDay*volDay,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
