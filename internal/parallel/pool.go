package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool runs band jobs on a fixed set of goroutines.
//
// Each worker owns a queue and steals from the others when its own queue
// is empty, so a slow band does not hold back idle workers.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	queues []chan func()
	done   chan struct{}
	wg     sync.WaitGroup

	// mu orders enqueueing against Close: every job sent while holding the
	// read lock is in a queue before done is closed, and workers drain
	// their queues on the way out.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts a pool with n workers. n <= 0 means GOMAXPROCS.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		queues: make([]chan func(), n),
		done:   make(chan struct{}),
	}
	depth := max(n*4, 8)
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}

	p.wg.Add(n)
	for i := range n {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
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
		case job := <-own:
			job()
		case <-p.done:
			drain(own)
			return
		}
	}
}

// steal takes one queued job from another worker, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for off := 1; off < len(p.queues); off++ {
		select {
		case job := <-p.queues[(self+off)%len(p.queues)]:
			return job
		default:
		}
	}
	return nil
}

func drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// ExecuteAll runs every job and blocks until all have returned. Jobs are
// dealt round-robin across the worker queues. On a closed pool the jobs
// run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 {
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for _, job := range jobs {
			job()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))
	for i, job := range jobs {
		p.queues[i%len(p.queues)] <- func() {
			defer pending.Done()
			job()
		}
	}
	p.mu.RUnlock()

	pending.Wait()
}

// Close lets queued jobs finish and stops the workers. Extra calls are
// no-ops.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return len(p.queues)
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}
