package grid

import (
	"runtime"
	"sync"
)

// minParallelTrips is the minimum number of loop trips before fanning
// out across workers; shorter loops run serially on the caller's
// goroutine.
const minParallelTrips = 4

// Loop calls fn(i) for every i = start, start+stride, ... < stop,
// distributing calls across up to GOMAXPROCS worker goroutines and
// returning only after every call has completed. Calls may execute in
// any order, so fn must be safe to run concurrently with itself for
// distinct indices.
//
// Short ranges run serially to avoid scheduling overhead.
func Loop(start, stop, stride int, fn func(i int)) {
	if stride <= 0 || start >= stop {
		return
	}
	trips := (stop - start + stride - 1) / stride
	workers := runtime.GOMAXPROCS(0)
	if workers > trips {
		workers = trips
	}
	if workers < 2 || trips < minParallelTrips {
		for i := start; i < stop; i += stride {
			fn(i)
		}
		return
	}

	// Work queue of indices; workers drain it until closed.
	work := make(chan int, trips)
	for i := start; i < stop; i += stride {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
