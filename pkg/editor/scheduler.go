package editor

import "time"

// Task is a scheduled recurring job
type Task interface {
	// Stop cancels future runs. Calling it more than once is safe.
	Stop()
}

// Scheduler runs fn every interval until the returned task is stopped.
// Runs of one task never overlap.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// ManualScheduler fires tasks synchronously when time is advanced
type ManualScheduler struct {
	now   time.Duration
	tasks []*manualTask
}

// NewManualScheduler creates a scheduler whose clock starts at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) Task {
	t := &manualTask{interval: interval, next: s.now + interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every task that came due,
// in order, as many times as it came due.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var due *manualTask
		for _, t := range s.tasks {
			if t.stopped || t.interval <= 0 || t.next > target {
				continue
			}
			if due == nil || t.next < due.next {
				due = t
			}
		}
		if due == nil {
			break
		}
		s.now = due.next
		due.next += due.interval
		due.runs++
		due.fn()
	}
	s.now = target
}

// Active returns how many tasks are still scheduled
func (s *ManualScheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

type manualTask struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	runs     int
	stopped  bool
}

func (t *manualTask) Stop() { t.stopped = true }
