// Package stats summarises a series for stage reports.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one series
type Summary struct {
	Count  int     `json:"count"`
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // sample std dev, 0 when Count < 2
}

// Summarize computes a Summary; an empty series gives the zero Summary
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(values),
		First: values[0],
		Last:  values[len(values)-1],
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}

	if len(values) < 2 {
		s.Mean = values[0]
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}

// Return is the simple return from the first to the last value
func (s Summary) Return() float64 {
	if s.Count == 0 || s.First == 0 {
		return 0
	}
	return (s.Last - s.First) / s.First
}

// Preview returns up to n leading and n trailing indices without overlap.
// Gap reports whether indices were skipped between head and tail.
func Preview(length, n int) (head []int, tail []int, gap bool) {
	if n <= 0 || length <= 0 {
		return nil, nil, length > 0
	}
	if length <= 2*n {
		head = make([]int, length)
		for i := range head {
			head[i] = i
		}
		return head, nil, false
	}

	head = make([]int, n)
	tail = make([]int, n)
	for i := 0; i < n; i++ {
		head[i] = i
		tail[i] = length - n + i
	}
	return head, tail, true
}

// Head returns the indices of the first n positions and how many follow them.
func Head(length, n int) (head []int, rest int) {
	if length <= 0 {
		return nil, 0
	}
	n = max(0, min(n, length))
	head = make([]int, n)
	for i := range head {
		head[i] = i
	}
	return head, length - n
}
