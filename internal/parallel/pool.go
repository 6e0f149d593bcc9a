// Package parallel distributes per-row image work across goroutines.
//
// Filters in rasterfx compute every output row from a read-only source and
// write only that row of the destination, so rows can be handed to workers
// without any locking on pixel data.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for row-parallel filtering.
//
// The pool distributes work items across multiple workers, each with their own
// queue. Workers steal work from other workers when their own queue is empty,
// which balances bands whose cost differs (for example the black frame left by
// an edge-skipping convolution costs nothing).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				if work != nil {
					work()
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// If the pool is closed, the work runs on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer completionWG.Done()
			fn()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			// Pool closed while submitting: finish the item here.
			wrapped()
		}
	}

	completionWG.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Rows calls fn(y) for every y in [0, n).
//
// With a nil or closed pool the rows run in order on the calling goroutine.
// Otherwise rows are grouped into contiguous bands and the bands run on the
// pool. The context is checked before every row; once it is done no further
// rows start and Rows returns ctx.Err().
func Rows(ctx context.Context, p *WorkerPool, n int, fn func(y int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	if p == nil || !p.IsRunning() || p.workers == 1 || n == 1 {
		for y := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y)
		}
		return nil
	}

	bands := BandCount(n, p.workers)
	size := (n + bands - 1) / bands

	work := make([]func(), 0, bands)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		work = append(work, func() {
			for y := start; y < end; y++ {
				if ctx.Err() != nil {
					return
				}
				fn(y)
			}
		})
	}

	p.ExecuteAll(work)
	return ctx.Err()
}

// BandCount returns how many row bands n rows are split into for the given
// number of workers: four bands per worker so stealing can even out uneven
// bands, never more bands than rows.
func BandCount(n, workers int) int {
	if n <= 0 {
		return 0
	}
	return max(1, min(n, workers*4))
}
