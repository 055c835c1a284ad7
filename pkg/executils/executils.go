package executils

import (
	"errors"
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

// ParallelExec calls fn for every value and joins the returned errors. Below
// parallelThreshold values it runs inline; above it, workers claim step-sized
// chunks.
func ParallelExec[T any](vals []T, parallelThreshold, step uint64, fn func(T) error) error {
	if step == 0 {
		step = 1
	}

	if uint64(len(vals)) < parallelThreshold {
		var errs []error
		for _, v := range vals {
			if err := fn(v); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	var (
		errsMu sync.Mutex
		errs   []error
	)

	start := atomic.NewUint64(0)
	end := uint64(len(vals))

	var wg sync.WaitGroup
	numCPU := runtime.NumCPU()
	wg.Add(numCPU)
	for p := 0; p < numCPU; p++ {
		go func() {
			defer wg.Done()
			for {
				n := start.Add(step)
				if n >= end+step {
					return
				}

				for i := n - step; i < n && i < end; i++ {
					if err := fn(vals[i]); err != nil {
						errsMu.Lock()
						errs = append(errs, err)
						errsMu.Unlock()
					}
				}
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}
