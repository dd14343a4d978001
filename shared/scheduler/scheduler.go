// Package scheduler runs delayed callbacks on a frame-stepped clock. It is
// driven from a single goroutine by the owner's per-frame update.
package scheduler

import "sort"

// Task is a handle to a scheduled callback.
type Task struct {
	due       float64
	seq       uint64
	fn        func()
	cancelled bool
	completed bool
}

// Cancel prevents the callback from running if it has not run yet.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether Cancel was called before the task ran.
func (t *Task) Cancelled() bool {
	return t != nil && t.cancelled
}

// Completed reports whether the callback ran.
func (t *Task) Completed() bool {
	return t != nil && t.completed
}

// Scheduler keeps its own clock in milliseconds, advanced by Update.
type Scheduler struct {
	now   float64
	seq   uint64
	tasks []*Task
}

// New returns a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's clock.
func (s *Scheduler) Now() float64 {
	return s.now
}

// AddDelayed schedules fn to run once delay ms from now. A task added while
// Update is running callbacks is never run in that same Update.
func (s *Scheduler) AddDelayed(fn func(), delay float64) *Task {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Task{due: s.now + delay, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending returns the number of tasks that are neither cancelled nor done.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Update advances the clock by dt and runs every due task in due order.
// Cancellation is checked right before each callback, so a task cancelled by
// an earlier callback in the same frame does not run.
func (s *Scheduler) Update(dt float64) {
	s.now += dt

	var due []*Task
	keep := s.tasks[:0:0]
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
		case t.due <= s.now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.tasks = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.completed = true
		t.fn()
	}
}

// Clear cancels every pending task.
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}
