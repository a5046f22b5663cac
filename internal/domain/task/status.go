package task

// Status is the lifecycle state of a Task. COMPLETED is terminal.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
