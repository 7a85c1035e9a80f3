package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
		want    []Range
	}{
		{"empty", 0, 4, nil},
		{"single item", 1, 8, []Range{{0, 1}}},
		{"even", 8, 4, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder goes first", 10, 4, []Range{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"more workers than items", 3, 16, []Range{{0, 1}, {1, 2}, {2, 3}}},
		{"zero workers treated as one", 5, 0, []Range{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.n, tt.workers))
		})
	}
}

func TestSplit_CoversRangeExactlyOnce(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 1000, 100000} {
		for _, workers := range []int{1, 3, 7, 64} {
			ranges := Split(n, workers)
			next := 0
			for _, r := range ranges {
				require.Equal(t, next, r.Lo, "n=%d workers=%d", n, workers)
				require.Greater(t, r.Len(), 0)
				next = r.Hi
			}
			assert.Equal(t, n, next, "n=%d workers=%d", n, workers)
		}
	}
}

func TestPool_ForVisitsEveryIndex(t *testing.T) {
	const n = 10007
	pool := NewPool(6)
	out := make([]int32, n)

	err := pool.For(n, func(_ int, r Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			out[i]++
		}
		return nil
	})
	require.NoError(t, err)

	for i, v := range out {
		require.Equal(t, int32(1), v, "index %d", i)
	}
}

func TestPool_ForWaitsForAllWorkers(t *testing.T) {
	pool := NewPool(4)
	var done atomic.Int64

	err := pool.For(1000, func(_ int, r Range) error {
		done.Add(int64(r.Len()))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), done.Load())
}

func TestPool_ForReturnsBodyError(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(4)

	err := pool.For(100, func(worker int, _ Range) error {
		if worker == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestNewPool_DefaultsToNumCPU(t *testing.T) {
	assert.GreaterOrEqual(t, NewPool(0).Workers(), 1)
	assert.Equal(t, 3, NewPool(3).Workers())
}
