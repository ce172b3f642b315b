// Package todo holds the task entity and the in-memory manager that owns it.
package todo

import (
	"fmt"
	"strings"
)

// Status is the lifecycle tag of a Todo.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Valid reports whether s is one of the three known statuses.
// The spelling is exact; this is the wire format used in the todos file.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus parses a user-supplied status name.
// Accepts "open", "in-progress", "inprogress" and "done" in any case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return StatusOpen, nil
	case "in-progress", "inprogress", "in_progress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("unknown status: %s", s)
}

// Todo represents a single tracked unit of work.
// The ID is assigned by the Manager at creation and never changes.
type Todo struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Status  Status `json:"status"`
}

// New creates a Todo with the given id and content, starting as StatusOpen.
func New(id int, content string) Todo {
	return Todo{
		ID:      id,
		Content: content,
		Status:  StatusOpen,
	}
}

// String renders the todo as a fixed-width, human-scannable line.
// Example: "[x] Learn Go             [Done        ] (ID: 42)"
func (t Todo) String() string {
	tick := " "
	if t.Status == StatusDone {
		tick = "x"
	}
	return fmt.Sprintf("[%s] %-20s [%-12s] (ID: %d)", tick, t.Content, string(t.Status), t.ID)
}
