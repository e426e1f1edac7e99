package worker

import (
	"sync/atomic"
	"testing"
)

// countingProcessFunc returns a process function that increments a counter
// and doubles its input.
func countingProcessFunc(counter *int32) ProcessFunc[int, int] {
	return func(item WorkItem[int]) int {
		atomic.AddInt32(counter, 1)
		return item.Job * 2
	}
}

// collectResults drains the result channel and returns the count.
func collectResults[R any](pool *Pool[int, R]) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem[int]{Job: i, Index: i})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolResultIndex checks every result carries its item's index.
func TestPoolResultIndex(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(3))
	pool.Start()

	go func() {
		for i := 0; i < 20; i++ {
			pool.Submit(WorkItem[int]{Job: i, Index: i})
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		if r.Value != r.Index*2 {
			t.Errorf("result for index %d = %d; want %d", r.Index, r.Value, r.Index*2)
		}
	}
}

// TestPoolEarlyStop tests that stopped pools drain without processing.
func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(100))
	pool.Stop()
	pool.Start()

	for i := 0; i < 50; i++ {
		pool.Submit(WorkItem[int]{Job: i, Index: i})
	}
	go pool.Close()

	if n := collectResults(pool); n != 0 {
		t.Errorf("results after Stop = %d; want 0", n)
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed after Stop = %d; want 0", got)
	}
}

// TestPoolIsStopped tests the stop flag.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(func(item WorkItem[int]) int { return 0 })
	if pool.IsStopped() {
		t.Error("new pool reports stopped")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("IsStopped() = false after Stop()")
	}
}

// TestNewPoolOptions tests option handling and defaults.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(8)}, 8, 10},
		{"buffer", []PoolOption{WithBufferSize(3)}, 1, 3},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-1)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(func(item WorkItem[int]) int { return 0 }, tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestMap tests ordered results regardless of worker count.
func TestMap(t *testing.T) {
	jobs := make([]string, 50)
	for i := range jobs {
		jobs[i] = string(rune('a' + i%26))
	}

	for _, workers := range []int{1, 4, 16} {
		out := Map(jobs, func(s string) string { return s + s }, WithWorkers(workers), WithBufferSize(2))
		if len(out) != len(jobs) {
			t.Fatalf("workers=%d: len(out) = %d; want %d", workers, len(out), len(jobs))
		}
		for i := range jobs {
			if out[i] != jobs[i]+jobs[i] {
				t.Errorf("workers=%d: out[%d] = %q; want %q", workers, i, out[i], jobs[i]+jobs[i])
			}
		}
	}
}

// TestMapEmpty tests that no jobs yields no results.
func TestMapEmpty(t *testing.T) {
	out := Map(nil, func(n int) int { return n })
	if len(out) != 0 {
		t.Errorf("len(out) = %d; want 0", len(out))
	}
}
