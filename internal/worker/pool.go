// Package worker provides a worker pool for running independent jobs in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is one job plus its submission index.
type WorkItem[T any] struct {
	Job   T
	Index int // Original index for tracking
}

// Result pairs a job's output with its submission index.
type Result[R any] struct {
	Value R
	Index int
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item WorkItem[T]) R

// Pool manages a pool of workers.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*options)

type options struct {
	numWorkers int
	bufferSize int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(o *options) {
		if n >= 1 {
			o.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(o *options) {
		if size >= 1 {
			o.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	o := options{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[T, R]{
		numWorkers:  o.numWorkers,
		bufferSize:  o.bufferSize,
		workChan:    make(chan WorkItem[T], o.bufferSize),
		resultChan:  make(chan Result[R], o.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- Result[R]{Value: p.processFunc(item), Index: item.Index}
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}

// Map runs fn over jobs on a pool and returns the outputs in job order.
func Map[T, R any](jobs []T, fn func(T) R, opts ...PoolOption) []R {
	pool := NewPool(func(item WorkItem[T]) R { return fn(item.Job) }, opts...)
	pool.Start()

	go func() {
		for i, job := range jobs {
			pool.Submit(WorkItem[T]{Job: job, Index: i})
		}
		pool.Close()
	}()

	out := make([]R, len(jobs))
	for r := range pool.Results() {
		out[r.Index] = r.Value
	}
	return out
}
