// Package frame provides port.FrameScheduler implementations.
package frame

import (
	"sync"
	"time"

	"github.com/bnema/shade/internal/application/port"
)

// Interval is the duration of one frame at 60 Hz.
const Interval = time.Second / 60

var (
	_ port.FrameScheduler = (*Timer)(nil)
	_ port.FrameScheduler = (*Queue)(nil)
)

// Timer runs each task once, one frame interval after it was requested.
type Timer struct {
	interval time.Duration
}

// NewTimer creates a scheduler with the given frame interval; non-positive means Interval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = Interval
	}
	return &Timer{interval: interval}
}

// RequestFrame implements port.FrameScheduler.
func (t *Timer) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	time.AfterFunc(t.interval, fn)
}

// Queue holds tasks until Flush runs them. Tasks requested while flushing
// wait for the next Flush, like callbacks requested during a paint.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame implements port.FrameScheduler.
func (q *Queue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, fn)
}

// Pending returns the number of queued tasks.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Flush runs the queued tasks in request order and returns how many ran.
func (q *Queue) Flush() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}
