// Package scheduler provides a fixed-size worker pool with support for
// delayed, cancelable tasks.
package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrClosed is returned when scheduling on a closed pool.
var ErrClosed = errors.New("scheduler: pool closed")

// Pool executes tasks on a fixed number of worker goroutines. Tasks are
// picked up in scheduling order; completion order across workers is not
// guaranteed.
type Pool struct {
	mu      sync.RWMutex
	tasks   chan func()
	pending map[*Task]struct{}
	closed  bool

	wg sync.WaitGroup
}

// NewPool starts a pool with the given number of workers. Values below one
// are treated as one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	p := &Pool{
		tasks:   make(chan func(), 128),
		pending: make(map[*Task]struct{}),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for task := range p.tasks {
		task()
	}
}

// Schedule enqueues a task for execution. It blocks while the queue is full
// and returns ErrClosed after Close.
func (p *Pool) Schedule(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	p.tasks <- task
	return nil
}

// Task is a handle to a delayed task created by ScheduleAfter.
type Task struct {
	pool  *Pool
	timer *time.Timer
	fired atomic.Bool
}

// Cancel stops a delayed task whose timer has not fired yet. It reports
// whether the task was prevented from running.
func (t *Task) Cancel() bool {
	stopped := t.timer.Stop()
	if stopped {
		t.pool.forget(t)
	}
	return stopped
}

// Finished reports whether the delay elapsed and the task was handed to the
// pool.
func (t *Task) Finished() bool {
	return t.fired.Load()
}

// ScheduleAfter enqueues a task for execution after the given delay. The
// returned handle can cancel the task while its timer is still pending. If
// the pool closes before the timer fires, the task is dropped.
func (p *Pool) ScheduleAfter(d time.Duration, task func()) *Task {
	t := &Task{pool: p}
	t.timer = time.AfterFunc(d, func() {
		t.fired.Store(true)
		p.forget(t)
		_ = p.Schedule(task)
	})
	p.remember(t)

	return t
}

func (p *Pool) remember(t *Task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		t.timer.Stop()
		return
	}
	if t.fired.Load() {
		return
	}
	p.pending[t] = struct{}{}
}

func (p *Pool) forget(t *Task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.pending, t)
}

// Close stops intake, cancels pending delayed tasks, lets already queued
// tasks finish, and joins the workers. It is idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	for t := range p.pending {
		t.timer.Stop()
	}
	p.pending = nil
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}
