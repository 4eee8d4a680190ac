package task

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// List owns an ordered collection of tasks. Insertion order is significant
// for display and positional addressing. Every operation holds the list
// lock, so a List is safe to share with the HTTP layer; tasks themselves are
// single-owner and only mutated through the Set operations here.
type List struct {
	mu    sync.RWMutex
	tasks []*Task
}

func NewList() *List {
	return &List{}
}

// Add appends t, preserving insertion order. Adding a task whose id is
// already present fails with DuplicateTaskError and leaves the list
// unchanged.
func (l *List) Add(t *Task) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, member := range l.tasks {
		if member.Equal(t) {
			return &DuplicateTaskError{Title: t.Title()}
		}
	}
	l.tasks = append(l.tasks, t)
	return nil
}

// Get returns the first task with the given id. An empty list is reported
// before any resolution is attempted.
func (l *List) Get(id TaskID) (*Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.getLocked("get", id)
}

func (l *List) getLocked(op string, id TaskID) (*Task, error) {
	if len(l.tasks) == 0 {
		return nil, &EmptyListError{Op: op}
	}
	for _, t := range l.tasks {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// GetByIndex returns the task at position i (zero-based insertion order).
func (l *List) GetByIndex(i int) (*Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.tasks) == 0 {
		return nil, &EmptyListError{Op: "get by index"}
	}
	if i < 0 || i >= len(l.tasks) {
		return nil, &IndexRangeError{Index: i, Size: len(l.tasks)}
	}
	return l.tasks[i], nil
}

// Resolve looks up a task by reference. The reference is always resolved
// through membership by id, never passed through on identity, so resolution
// only succeeds against tasks actually present in the list.
func (l *List) Resolve(t *Task) (*Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.getLocked("resolve", t.ID())
}

// Find returns the first task matching a raw key: the decimal id form or the
// exact title.
func (l *List) Find(key string) (*Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.tasks) == 0 {
		return nil, &EmptyListError{Op: "find"}
	}
	for _, t := range l.tasks {
		if t.Matches(key) {
			return t, nil
		}
	}
	if id, err := ParseTaskID(key); err == nil {
		return nil, &NotFoundError{ID: id}
	}
	return nil, &NotFoundError{Key: key}
}

// All returns a copy of the ordered member slice. Membership cannot be
// changed through the copy; mutating fields of a returned task through its
// setters is how updates work.
func (l *List) All() []*Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tasks)
}

// Delete removes the first task with the given id.
func (l *List) Delete(id TaskID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deleteLocked(id)
}

// DeleteTask removes a task by reference, resolving membership by id.
func (l *List) DeleteTask(t *Task) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deleteLocked(t.ID())
}

func (l *List) deleteLocked(id TaskID) error {
	if len(l.tasks) == 0 {
		return &EmptyListError{Op: "delete"}
	}
	for i, t := range l.tasks {
		if t.ID() == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// SetTitle resolves id and updates the task title. Validation failures
// propagate unchanged and leave the task as it was.
func (l *List) SetTitle(id TaskID, title string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.getLocked("set title", id)
	if err != nil {
		return err
	}
	return t.SetTitle(title)
}

func (l *List) SetDescription(id TaskID, desc string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.getLocked("set description", id)
	if err != nil {
		return err
	}
	t.SetDescription(desc)
	return nil
}

func (l *List) SetStatus(id TaskID, status string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.getLocked("set status", id)
	if err != nil {
		return err
	}
	return t.SetStatus(status)
}

func (l *List) SetDueDate(id TaskID, due time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.getLocked("set due date", id)
	if err != nil {
		return err
	}
	t.SetDueDate(due)
	return nil
}

func (l *List) SetDueDateText(id TaskID, due string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.getLocked("set due date", id)
	if err != nil {
		return err
	}
	return t.SetDueDateText(due)
}

// String renders the one-indexed numbered listing. An empty list renders a
// fixed placeholder line.
func (l *List) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Task List:\n")
	if len(l.tasks) == 0 {
		b.WriteString("  - No tasks in the task list.\n")
		return b.String()
	}
	for i, t := range l.tasks {
		fmt.Fprintf(&b, "  %d.\t%s\n", i+1, t)
	}
	return b.String()
}

// DebugString returns a structural dump of the whole list.
func (l *List) DebugString() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dumps := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		dumps[i] = t.DebugString()
	}
	return fmt.Sprintf("<TaskManager: task_list=[%s]>", strings.Join(dumps, ", "))
}
