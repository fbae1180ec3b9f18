// Copyright 2025 The go-sortengine Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent jobs on a fixed set of goroutines.
//
// The sortengine bench command uses it to sort one input with several
// algorithms at once. Every job gets its own copy of the data, so jobs never
// share mutable state.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	results := workerpool.Map(pool, algorithms, func(a sorting.Algorithm) Result {
//	    return run(a, input)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers reused across many Run calls.
type Pool struct {
	size      int
	jobs      chan job
	closeOnce sync.Once
	closed    atomic.Bool
}

type job struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with size workers. If size <= 0, GOMAXPROCS is used.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		size: size,
		jobs: make(chan job, size),
	}
	for range size {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.fn()
		j.done.Done()
	}
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Close stops the workers once queued work finishes. It is safe to call
// more than once. Run keeps working after Close, sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// Run calls fn(i) for every i in [0, n) and blocks until all calls return.
// Workers pull the next index from a shared counter, so slow jobs do not
// hold up the rest.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.size, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

// Map applies fn to every item on the pool and returns the results in item
// order.
func Map[T, R any](p *Pool, items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	p.Run(len(items), func(i int) {
		out[i] = fn(items[i])
	})
	return out
}
