package task

import (
	"fmt"
	"strings"
)

// InvalidTitleError reports a rejected title: absent, empty, or
// whitespace-only.
type InvalidTitleError struct {
	TaskID TaskID
}

func (e *InvalidTitleError) Error() string {
	return fmt.Sprintf("invalid title for task %s: title must not be empty or whitespace-only", e.TaskID)
}

// InvalidStatusError reports a status outside the canonical set.
type InvalidStatusError struct {
	TaskID  TaskID
	Value   string
	Allowed []Status
}

func (e *InvalidStatusError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("invalid status %q for task %s (allowed: %s)", e.Value, e.TaskID, strings.Join(allowed, ", "))
}

// InvalidDueDateError reports due date text that is mispatterned or does not
// denote a real calendar date.
type InvalidDueDateError struct {
	TaskID TaskID
	Value  string
}

func (e *InvalidDueDateError) Error() string {
	return fmt.Sprintf("invalid due date %q for task %s: want M/D/YYYY", e.Value, e.TaskID)
}

// EmptyListError reports an operation that needs at least one task being
// invoked on an empty list. It is raised before any id or index resolution.
type EmptyListError struct {
	Op string
}

func (e *EmptyListError) Error() string {
	if e.Op == "" {
		return "task list is empty"
	}
	return fmt.Sprintf("cannot perform %s: task list is empty", e.Op)
}

// NotFoundError reports an id (or raw key) that resolves to no member of a
// non-empty list.
type NotFoundError struct {
	ID TaskID
	// Key holds the unresolved lookup key when the caller searched by raw
	// text rather than id.
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("no task found matching %q", e.Key)
	}
	return fmt.Sprintf("no task found with task ID %s", e.ID)
}

// IndexRangeError reports a positional address outside the list bounds.
type IndexRangeError struct {
	Index int
	Size  int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("task index %d out of range [0, %d)", e.Index, e.Size)
}

// DuplicateTaskError reports an add of a task already present in the list.
type DuplicateTaskError struct {
	Title string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("duplicate task already exists in the task list: %q was not added", e.Title)
}
