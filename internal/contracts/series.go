package contracts

import "fmt"

// MaxLen bounds every series in the pipeline.
// Exceeding it is an input-size error, never a silent truncation.
const MaxLen = 100000

// VariateSeries holds independent standard-normal draws (stage 1 output)
// ⭐ SSOT: generate → scan
type VariateSeries []float64

// WienerSeries is the inclusive prefix sum of a VariateSeries (stage 2 output)
// ⭐ SSOT: scan → evaluate
type WienerSeries []float64

// PricePath is the simulated GBM price series (stage 3 output)
// ⭐ SSOT: evaluate → visualizer
type PricePath []float64

// ValidateLength checks 1 ≤ n ≤ MaxLen
func ValidateLength(n int) error {
	if n < 1 || n > MaxLen {
		return fmt.Errorf("%w: got %d, must be between 1 and %d", ErrInvalidInputSize, n, MaxLen)
	}
	return nil
}
