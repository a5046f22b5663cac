package task

// Priority ranks the urgency of a Task.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}
