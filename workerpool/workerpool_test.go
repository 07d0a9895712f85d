package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestParallelForCoversEveryIndex(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 1000
	var hits [n]atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelForZeroAndNegative(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelFor(-3, func(start, end int) { called = true })
	if called {
		t.Error("fn invoked for empty range")
	}
}

func TestParallelForFewerItemsThanWorkers(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var count atomic.Int64
	pool.ParallelFor(3, func(start, end int) {
		count.Add(int64(end - start))
	})
	if got := count.Load(); got != 3 {
		t.Errorf("covered %d items, want 3", got)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for round := 0; round < 50; round++ {
		var sum atomic.Int64
		pool.ParallelFor(100, func(start, end int) {
			for i := start; i < end; i++ {
				sum.Add(int64(i))
			}
		})
		if got := sum.Load(); got != 4950 {
			t.Fatalf("round %d: sum = %d, want 4950", round, got)
		}
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	if got := pool.NumWorkers(); got != runtime.NumCPU() {
		t.Errorf("NumWorkers = %d, want %d", got, runtime.NumCPU())
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close() // second Close must be a no-op

	var sum int
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			sum += i
		}
	})
	if sum != 45 {
		t.Errorf("sum = %d, want 45", sum)
	}
}
