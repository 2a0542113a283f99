package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/cvbuilder/pkg/editor"
)

// autosaveTickMsg fires a scheduled task on the program's goroutine
type autosaveTickMsg struct {
	id int
}

// tickScheduler runs editor tasks through bubbletea ticks so the controller
// is only touched from Update
type tickScheduler struct {
	tasks   map[int]*tickTask
	next    int
	pending []tea.Cmd
}

type tickTask struct {
	id       int
	interval time.Duration
	fn       func()
	owner    *tickScheduler
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{tasks: map[int]*tickTask{}}
}

// Every implements editor.Scheduler. The first tick is queued until Flush.
func (s *tickScheduler) Every(interval time.Duration, fn func()) editor.Task {
	s.next++
	t := &tickTask{id: s.next, interval: interval, fn: fn, owner: s}
	s.tasks[t.id] = t
	s.pending = append(s.pending, t.tick())
	return t
}

// Flush returns the ticks queued since the last call
func (s *tickScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Fire runs the task and schedules its next tick. Ticks of stopped tasks
// are dropped.
func (s *tickScheduler) Fire(msg autosaveTickMsg) tea.Cmd {
	t, ok := s.tasks[msg.id]
	if !ok {
		return nil
	}
	t.fn()
	if _, ok := s.tasks[msg.id]; !ok {
		return nil
	}
	return t.tick()
}

// Active returns the number of running tasks
func (s *tickScheduler) Active() int {
	return len(s.tasks)
}

func (t *tickTask) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return autosaveTickMsg{id: id}
	})
}

func (t *tickTask) Stop() {
	delete(t.owner.tasks, t.id)
}
