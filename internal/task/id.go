package task

import (
	"strconv"
	"sync/atomic"
)

// TaskID uniquely identifies a task for the lifetime of the process.
// IDs are never reused, even after the task is deleted.
type TaskID int64

func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseTaskID parses the decimal form of a task id.
func ParseTaskID(s string) (TaskID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return TaskID(n), nil
}

// IDSource issues task ids. Every Generate call returns a value strictly
// greater than any previous return from the same source.
type IDSource struct {
	last atomic.Int64
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

func (s *IDSource) Generate() TaskID {
	return TaskID(s.last.Add(1))
}

// defaultIDs backs New when no source is injected.
var defaultIDs IDSource
