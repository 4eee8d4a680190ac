package task

import (
	"regexp"
	"strings"
	"time"
)

// DueDateLayout is the month-first text form for due dates: one or two digit
// month and day, exactly four digit year. Day-first parsing is never
// attempted, even for day <= 12.
const DueDateLayout = "1/2/2006"

var dueDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

// ValidTitle reports whether s is a usable title: non-empty after trimming
// leading and trailing whitespace.
func ValidTitle(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidDescription reports whether s is a usable description. Descriptions
// are optional and unconstrained, so every string is valid; the predicate
// exists to keep the validator surface complete.
func ValidDescription(s string) bool {
	return true
}

// ValidStatus reports whether s is a case-insensitive member of the
// canonical status set.
func ValidStatus(s string) bool {
	switch Status(strings.ToLower(s)) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidDueDateText reports whether s is a due date in DueDateLayout form
// denoting a real calendar date. Month 13 or February 30 fail here, as do
// two-digit years and ISO-style dates.
func ValidDueDateText(s string) bool {
	if !dueDatePattern.MatchString(s) {
		return false
	}
	_, err := parseDueDate(s)
	return err == nil
}

func parseDueDate(s string) (time.Time, error) {
	return time.ParseInLocation(DueDateLayout, s, time.Local)
}
