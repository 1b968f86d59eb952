// Package parallel runs independent pipeline jobs on a fixed set of
// goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs jobs on a fixed number of goroutines.
//
// Each worker owns a queue and steals from the other queues when its own
// runs dry, so a few slow jobs (large images) do not leave workers idle.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held shared by Run and exclusively by Close, so Close never
	// stops the workers while a Run is still queueing or waiting.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case job := <-p.queues[(self+i)%p.workers]:
			return job
		default:
		}
	}
	return nil
}

// Run calls fn(ctx, i) for every i in [0, n) across the workers and waits
// for all calls to return. Jobs not yet started when ctx is cancelled are
// skipped and Run returns ctx.Err(). A closed pool runs nothing.
// fn must not call Run on the same pool.
func (p *WorkerPool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if n <= 0 || !p.running.Load() {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	pending.Add(n)
	for i := range n {
		job := func() {
			defer pending.Done()
			if ctx.Err() != nil {
				return
			}
			fn(ctx, i)
		}

		select {
		case p.queues[i%p.workers] <- job:
		case <-ctx.Done():
			// Nothing after i was queued.
			pending.Add(-(n - i))
			pending.Wait()
			return ctx.Err()
		}
	}
	pending.Wait()
	return ctx.Err()
}

// Close waits for in-flight Run calls to return, then stops the workers.
// Run calls that start after Close run nothing. Close is safe to call more
// than once and concurrently with Run.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Map runs fn on every element of in using a temporary pool of the given
// size and returns the results in input order.
func Map[In, Out any](ctx context.Context, workers int, in []In, fn func(ctx context.Context, v In) Out) ([]Out, error) {
	out := make([]Out, len(in))
	if len(in) == 0 {
		return out, ctx.Err()
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := NewWorkerPool(min(workers, len(in)))
	defer p.Close()

	err := p.Run(ctx, len(in), func(ctx context.Context, i int) {
		out[i] = fn(ctx, in[i])
	})
	return out, err
}
