package task

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in progress"
	StatusCompleted  Status = "completed"
)

// AllowedStatuses returns the canonical status set, in display order.
func AllowedStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// debugDateLayout is the zero-padded form used by DebugString.
const debugDateLayout = "01/02/2006"

// Task is a single to-do record. All fields are reached through accessors;
// the mutators validate before committing, so a Task is never observable in
// an invalid state.
type Task struct {
	id          TaskID
	title       string
	description string
	status      Status
	dueDate     time.Time
}

type newConfig struct {
	ids         *IDSource
	description *string
	status      *string
	dueDate     *time.Time
	dueDateText *string
}

type Option func(*newConfig)

// WithDescription sets the optional description.
func WithDescription(desc string) Option {
	return func(c *newConfig) { c.description = &desc }
}

// WithStatus sets the initial status from its text form. Validated during New.
func WithStatus(status string) Option {
	return func(c *newConfig) { c.status = &status }
}

// WithDueDate sets the due date from an already-resolved time value.
func WithDueDate(due time.Time) Option {
	return func(c *newConfig) { c.dueDate = &due }
}

// WithDueDateText sets the due date from its M/D/YYYY text form. Validated
// during New.
func WithDueDateText(due string) Option {
	return func(c *newConfig) { c.dueDateText = &due }
}

// WithIDSource draws the task id from src instead of the process-wide
// default source.
func WithIDSource(src *IDSource) Option {
	return func(c *newConfig) { c.ids = src }
}

// New constructs a Task with a freshly issued id. Status defaults to pending
// and the due date to the creation time. Any option that fails validation
// aborts construction; the drawn id is not returned to the source.
func New(title string, opts ...Option) (*Task, error) {
	cfg := newConfig{ids: &defaultIDs}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Task{
		id:      cfg.ids.Generate(),
		status:  StatusPending,
		dueDate: time.Now(),
	}

	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if cfg.description != nil {
		t.SetDescription(*cfg.description)
	}
	if cfg.status != nil {
		if err := t.SetStatus(*cfg.status); err != nil {
			return nil, err
		}
	}
	if cfg.dueDate != nil {
		t.SetDueDate(*cfg.dueDate)
	}
	if cfg.dueDateText != nil {
		if err := t.SetDueDateText(*cfg.dueDateText); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Task) ID() TaskID          { return t.id }
func (t *Task) Title() string       { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) Status() Status      { return t.status }
func (t *Task) DueDate() time.Time  { return t.dueDate }

// SetTitle stores the candidate verbatim after checking that its trimmed
// form is non-empty.
func (t *Task) SetTitle(title string) error {
	if !ValidTitle(title) {
		return &InvalidTitleError{TaskID: t.id}
	}
	t.title = title
	return nil
}

func (t *Task) SetDescription(desc string) {
	t.description = desc
}

// SetStatus stores the lowercased canonical form of a case-insensitive
// member of the allowed set.
func (t *Task) SetStatus(status string) error {
	if !ValidStatus(status) {
		return &InvalidStatusError{TaskID: t.id, Value: status, Allowed: AllowedStatuses()}
	}
	t.status = Status(strings.ToLower(status))
	return nil
}

// SetDueDate stores an already-resolved due date unchanged.
func (t *Task) SetDueDate(due time.Time) {
	t.dueDate = due
}

// SetDueDateText parses and stores a due date in M/D/YYYY form, month first,
// at local midnight.
func (t *Task) SetDueDateText(due string) error {
	if !ValidDueDateText(due) {
		return &InvalidDueDateError{TaskID: t.id, Value: due}
	}
	parsed, err := parseDueDate(due)
	if err != nil {
		return &InvalidDueDateError{TaskID: t.id, Value: due}
	}
	t.dueDate = parsed
	return nil
}

// Equal reports whether both tasks carry the same id.
func (t *Task) Equal(other *Task) bool {
	return other != nil && t.id == other.id
}

// Matches reports whether key equals either the id's decimal form or the
// title, the raw-key equality rule used by List.Find.
func (t *Task) Matches(key string) bool {
	return key == t.id.String() || key == t.title
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (ID #%s)", t.title, t.id)
}

// DebugString returns a tagged structural dump of every field.
func (t *Task) DebugString() string {
	return fmt.Sprintf("<Task: task_id=%q, title=%q, description=%q, due_date=%s, status=%q>",
		t.id.String(), t.title, t.description, t.dueDate.Format(debugDateLayout), t.status)
}
