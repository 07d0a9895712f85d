// Package workerpool provides a persistent, reusable worker pool for
// row-partitioned parallel computation.  A Pool is created once and reused
// across many engine invocations, so per-call goroutine spawning and channel
// allocation stay out of the hot path.
//
// Usage:
//
//	pool := workerpool.New(runtime.NumCPU())
//	defer pool.Close()
//
//	pool.ParallelFor(height, func(y0, y1 int) {
//	    processRows(y0, y1)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool.  Workers are spawned once at creation
// and reused; the pool is safe for concurrent use.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of parallel work.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.  If numWorkers <= 0,
// runtime.NumCPU() is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Close shuts down the pool.  Pending work completes; calling Close more
// than once is safe.  ParallelFor on a closed pool degrades to a sequential
// call.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor partitions [0, n) into contiguous disjoint ranges and invokes
// fn(start, end) for each on the pool's workers.  It blocks until every
// range has completed, so when it returns all writes made by fn are visible
// to the caller.  Because the ranges are disjoint, fn needs no internal
// synchronization as long as it writes only inside its range.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}
