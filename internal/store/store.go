package store

import (
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultAutosaveInterval is how long the store waits between periodic saves.
const DefaultAutosaveInterval = 30 * time.Second

// Options configures a Store.
type Options struct {
	// Path is the JSON file tasks are loaded from and saved to.
	Path string

	// AutosaveInterval defaults to DefaultAutosaveInterval when zero.
	AutosaveInterval time.Duration

	Logger *log.Logger

	// Now is used for the autosave timer; defaults to time.Now.
	Now func() time.Time
}

// Store holds the ordered task list and the last deleted batch.
// It is not safe for concurrent use; the UI loop is its only caller.
type Store struct {
	path     string
	interval time.Duration
	logger   *log.Logger
	now      func() time.Time

	tasks       []Task
	lastDeleted []Task
	revision    uint64
	lastSave    time.Time
}

// New creates an empty store.
func New(opts Options) *Store {
	s := &Store{
		path:     opts.Path,
		interval: opts.AutosaveInterval,
		logger:   opts.Logger,
		now:      opts.Now,
		tasks:    []Task{},
	}
	if s.interval <= 0 {
		s.interval = DefaultAutosaveInterval
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.lastSave = s.now()
	return s
}

// Open creates a store and loads its tasks from opts.Path.
func Open(opts Options) *Store {
	s := New(opts)
	s.tasks = Load(s.path, s.logger)
	return s
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Tasks returns the ordered task list. Callers must not modify it.
func (s *Store) Tasks() []Task {
	return s.tasks
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Task returns the task at position i.
func (s *Store) Task(i int) (Task, bool) {
	if !s.valid(i) {
		return Task{}, false
	}
	return s.tasks[i], true
}

// IndexOf returns the position of the task with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// LastDeleted returns the batch an Undo would restore.
func (s *Store) LastDeleted() []Task {
	return s.lastDeleted
}

// Revision changes whenever tasks are added, removed or reordered.
// Positions captured under one revision are not meaningful under another.
func (s *Store) Revision() uint64 {
	return s.revision
}

func (s *Store) valid(i int) bool {
	return i >= 0 && i < len(s.tasks)
}

func (s *Store) bump() {
	s.revision++
}

// Add appends a new task and re-sorts by priority. Blank text is rejected
// and reported by returning false.
func (s *Store) Add(text string, priority int, color Color) bool {
	t, err := NewTask(text, priority, color)
	if err != nil {
		s.logger.Debug("add rejected", "err", err)
		return false
	}
	s.tasks = append(s.tasks, t)
	s.sortByPriority()
	s.bump()
	s.logger.Debug("task added", "id", t.ID, "priority", t.Priority)
	return true
}

// DeleteSelected removes every selected task and keeps them, in list order,
// as the batch a later Undo restores. The previous batch is discarded.
// It returns how many tasks were removed; zero leaves everything untouched.
func (s *Store) DeleteSelected() int {
	var deleted []Task
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Selected {
			deleted = append(deleted, t)
		} else {
			kept = append(kept, t)
		}
	}
	if len(deleted) == 0 {
		return 0
	}
	s.tasks = kept
	s.lastDeleted = deleted
	s.bump()
	s.logger.Debug("tasks deleted", "count", len(deleted))
	return len(deleted)
}

// Undo restores the last deleted batch and re-sorts by priority.
// It returns false when there is nothing to restore.
func (s *Store) Undo() bool {
	if len(s.lastDeleted) == 0 {
		return false
	}
	s.tasks = append(s.tasks, s.lastDeleted...)
	s.lastDeleted = nil
	s.sortByPriority()
	s.bump()
	s.logger.Debug("delete undone", "count", len(s.tasks))
	return true
}

// Recolor sets the color of every selected task and returns how many changed.
func (s *Store) Recolor(c Color) int {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Selected {
			s.tasks[i].Color = c
			n++
		}
	}
	return n
}

// SetText replaces a task's text. Blank text is rejected.
func (s *Store) SetText(id, text string) bool {
	i := s.IndexOf(id)
	text = strings.TrimSpace(text)
	if i < 0 || text == "" {
		return false
	}
	s.tasks[i].Text = text
	return true
}

// SetPriority changes a task's priority in place without re-sorting.
func (s *Store) SetPriority(id string, p int) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Priority = ClampPriority(p)
	return true
}

// SortByPriority orders tasks by priority, highest first. Ties keep their
// relative order. The revision only changes when tasks actually moved.
func (s *Store) SortByPriority() {
	if s.sortByPriority() {
		s.bump()
	}
}

func (s *Store) sortByPriority() bool {
	less := func(i, j int) bool {
		return s.tasks[i].Priority > s.tasks[j].Priority
	}
	if sort.SliceIsSorted(s.tasks, less) {
		return false
	}
	sort.SliceStable(s.tasks, less)
	return true
}

// ToggleSelected flips the selection flag of the task at position i.
func (s *Store) ToggleSelected(i int) bool {
	if !s.valid(i) {
		return false
	}
	s.tasks[i].Selected = !s.tasks[i].Selected
	return true
}

// FirstSelected returns the position of the first selected task, or -1.
func (s *Store) FirstSelected() int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.Selected })
}

// SelectedCount returns how many tasks are selected.
func (s *Store) SelectedCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.Selected {
			n++
		}
	}
	return n
}

// AnySelected reports whether at least one task is selected.
func (s *Store) AnySelected() bool {
	return s.FirstSelected() >= 0
}

// Selected returns the selected tasks in list order.
func (s *Store) Selected() []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.Selected {
			out = append(out, t)
		}
	}
	return out
}

// ClearSelection deselects every task and returns how many were selected.
func (s *Store) ClearSelection() int {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Selected {
			s.tasks[i].Selected = false
			n++
		}
	}
	return n
}

// SelectNext moves the cursor (the first selected task) one position down.
// With nothing selected the first task is selected.
func (s *Store) SelectNext() bool {
	return s.step(1)
}

// SelectPrev moves the cursor one position up. With nothing selected the
// first task is selected.
func (s *Store) SelectPrev() bool {
	return s.step(-1)
}

func (s *Store) step(delta int) bool {
	if len(s.tasks) == 0 {
		return false
	}
	i := s.FirstSelected()
	if i < 0 {
		s.tasks[0].Selected = true
		return true
	}
	j := i + delta
	if !s.valid(j) {
		return false
	}
	s.tasks[i].Selected = false
	s.tasks[j].Selected = true
	return true
}

// Move relocates the task at from to position to, shifting the tasks in
// between, then rebalances its priority so it fits between its new
// neighbours. The list is deliberately not re-sorted. Invalid or equal
// positions are ignored.
func (s *Store) Move(from, to int) bool {
	if from == to {
		return false
	}
	if !s.valid(from) || !s.valid(to) {
		s.logger.Debug("move ignored", "from", from, "to", to, "err", ErrIndexOutOfRange)
		return false
	}

	t := s.tasks[from]
	s.tasks = slices.Delete(s.tasks, from, from+1)
	s.tasks = slices.Insert(s.tasks, to, t)
	s.tasks[to].Priority = s.rebalancedPriority(to)
	s.bump()
	s.logger.Debug("task moved", "from", from, "to", to, "priority", s.tasks[to].Priority)
	return true
}

// rebalancedPriority computes the priority for the task just placed at to.
func (s *Store) rebalancedPriority(to int) int {
	n := len(s.tasks)
	switch {
	case to == 0:
		if n > 1 {
			return ClampPriority(s.tasks[1].Priority)
		}
		return s.tasks[to].Priority
	case to == n-1:
		return ClampPriority(s.tasks[n-2].Priority)
	default:
		prev, next := s.tasks[to-1].Priority, s.tasks[to+1].Priority
		return clamp(s.tasks[to].Priority, min(prev, next), max(prev, next))
	}
}

// Save persists the task list now and resets the autosave timer.
// Failures are logged and otherwise ignored.
func (s *Store) Save() {
	s.saveAt(s.now())
}

func (s *Store) saveAt(now time.Time) {
	s.lastSave = now
	if err := Persist(s.path, s.tasks); err != nil {
		s.logger.Warn("failed to persist tasks", "path", s.path, "err", err)
		return
	}
	s.logger.Debug("tasks persisted", "path", s.path, "count", len(s.tasks))
}

// AutosaveDue reports whether more than the autosave interval has passed
// since the last save.
func (s *Store) AutosaveDue(now time.Time) bool {
	return now.Sub(s.lastSave) > s.interval
}

// Tick saves when the autosave interval has elapsed and reports whether it did.
func (s *Store) Tick(now time.Time) bool {
	if !s.AutosaveDue(now) {
		return false
	}
	s.saveAt(now)
	return true
}
