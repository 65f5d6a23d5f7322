package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// collectIndices drains the result channel.
func collectIndices(pool *Pool) map[int]bool {
	seen := make(map[int]bool)
	for r := range pool.Results() {
		seen[r.Index] = true
	}
	return seen
}

func TestPoolProcessesEveryItem(t *testing.T) {
	for _, workers := range []int{1, 4, 8} {
		var processed int32
		pool := NewPool(workers, 10, countingProcessFunc(&processed))
		pool.Start()

		const numItems = 40
		go func() {
			for i := 0; i < numItems; i++ {
				pool.Submit(WorkItem{Index: i})
			}
			pool.Close()
		}()

		seen := collectIndices(pool)
		assert.Len(t, seen, numItems, "workers=%d", workers)
		assert.Equal(t, int32(numItems), atomic.LoadInt32(&processed), "workers=%d", workers)
	}
}

func TestPoolStop(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(1, 50, slow)
	pool.Start()
	require.False(t, pool.IsStopped())

	for i := 0; i < 50; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	pool.Stop()
	assert.True(t, pool.IsStopped())
	assert.False(t, pool.TrySubmit(WorkItem{Index: 99}), "TrySubmit after Stop")

	go pool.Close()
	collectIndices(pool)
	assert.Less(t, atomic.LoadInt32(&processed), int32(50))
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid ignored", []PoolOption{WithWorkers(0), WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(countingProcessFunc(new(int32)), tt.opts...)
			assert.Equal(t, tt.wantWorkers, pool.NumWorkers())
			assert.Equal(t, tt.wantBuffer, pool.bufferSize)
		})
	}

	// Non-positive arguments to NewPool fall back to one.
	assert.Equal(t, 1, NewPool(-1, 0, countingProcessFunc(new(int32))).NumWorkers())
}
