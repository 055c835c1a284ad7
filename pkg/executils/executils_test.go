package executils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func TestParallelExec(t *testing.T) {
	for name, tc := range map[string]struct {
		size      int
		threshold uint64
		step      uint64
	}{
		"Inline":      {10, 100, 2},
		"Parallel":    {1000, 10, 7},
		"ZeroStep":    {50, 1, 0},
		"Empty":       {0, 0, 2},
		"ExactChunks": {64, 1, 8},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			vals := make([]int, tc.size)
			for i := range vals {
				vals[i] = i
			}

			var sum atomic.Int64
			var calls atomic.Int64
			err := ParallelExec(vals, tc.threshold, tc.step, func(v int) error {
				sum.Add(int64(v))
				calls.Inc()
				return nil
			})

			assert.NoError(t, err)
			assert.Equal(t, int64(tc.size), calls.Load())
			assert.Equal(t, int64(tc.size*(tc.size-1)/2), sum.Load())
		})
	}
}

func TestParallelExecJoinsErrors(t *testing.T) {
	errOdd := errors.New("odd")

	for name, threshold := range map[string]uint64{"Inline": 1000, "Parallel": 1} {
		threshold := threshold
		t.Run(name, func(t *testing.T) {
			err := ParallelExec([]int{1, 2, 3, 4}, threshold, 1, func(v int) error {
				if v%2 == 1 {
					return errOdd
				}
				return nil
			})
			assert.ErrorIs(t, err, errOdd)
		})
	}
}
