package pool

import "sync"

// WorkerPool bounds the number of jobs running at once. It is used to fan out
// per-record valuation calls without flooding the upstream service.
type WorkerPool struct {
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// New creates a WorkerPool with the given concurrency limit.
func New(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		semaphore: make(chan struct{}, maxWorkers),
	}
}

// Submit enqueues a job for execution, blocking while the pool is full.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}
