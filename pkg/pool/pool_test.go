package pool

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllJobs(t *testing.T) {
	wp := New(4)

	var counter int64
	for i := 0; i < 100; i++ {
		wp.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	wp.Wait()

	if counter != 100 {
		t.Errorf("expected 100 jobs to run, got %d", counter)
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const limit = 3
	wp := New(limit)

	var running, peak int64
	var mu sync.Mutex
	for i := 0; i < 50; i++ {
		wp.Submit(func() {
			now := atomic.AddInt64(&running, 1)
			mu.Lock()
			if now > peak {
				peak = now
			}
			mu.Unlock()
			atomic.AddInt64(&running, -1)
		})
	}
	wp.Wait()

	mu.Lock()
	defer mu.Unlock()
	if peak > limit {
		t.Errorf("observed %d concurrent jobs, limit is %d", peak, limit)
	}
}

func TestPoolClampsInvalidLimit(t *testing.T) {
	wp := New(0)

	done := false
	wp.Submit(func() { done = true })
	wp.Wait()

	if !done {
		t.Error("a zero limit must still run jobs")
	}
}
