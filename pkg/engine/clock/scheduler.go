// Package clock provides the frame-stepped simulated clock and its timers.
// Everything runs on the caller's goroutine: timers fire from inside Advance.
package clock

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// Timer is a scheduled callback
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
	sched   *Scheduler
}

// Stop cancels the timer. Returns false if it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.sched.live--
	return true
}

// Due returns the simulated time at which the timer fires
func (t *Timer) Due() time.Duration {
	return t.due
}

// Scheduler owns simulated time and the pending timers
type Scheduler struct {
	now    time.Duration
	seq    uint64
	live   int
	timers *heap.Heap[*Timer]
}

// New creates a scheduler at time zero
func New() *Scheduler {
	return &Scheduler{
		timers: heap.New[*Timer](func(a, b *Timer) bool {
			if a.due != b.due {
				return a.due < b.due
			}
			return a.seq < b.seq
		}),
	}
}

// Now returns the current simulated time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have neither fired nor been stopped
func (s *Scheduler) Pending() int {
	return s.live
}

// After schedules fn to run once d has elapsed. A non-positive d fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		due:   s.now + d,
		seq:   s.seq,
		fn:    fn,
		sched: s,
	}
	s.timers.Push(t)
	s.live++
	return t
}

// Advance moves time forward by dt and runs every timer due by then,
// ordered by due time and then by scheduling order. The clock reads the
// timer's due time while its callback runs.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for {
		next, ok := s.timers.Peek()
		if !ok || next.due > target {
			break
		}
		s.timers.Pop()
		if next.stopped {
			continue
		}
		if next.due > s.now {
			s.now = next.due
		}
		next.fired = true
		s.live--
		if next.fn != nil {
			next.fn()
		}
	}

	s.now = target
}
