package domain

import "time"

// TaskType partitions the board: MANDATORY tasks are handed out by
// management, OPEN tasks are free for anyone to take. Fixed at creation.
type TaskType string

const (
	TypeMandatory TaskType = "MANDATORY"
	TypeOpen      TaskType = "OPEN"
)

// String returns the display string
func (t TaskType) String() string {
	return string(t)
}

// Priority represents task priority
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Rank returns the priority as an integer, 0 = most urgent. Used for sorting
// and badge colors.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 3
	}
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// TaskStatus represents task workflow status, derived from progress.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// String returns the display string
func (s TaskStatus) String() string {
	return string(s)
}

// Task represents a unit of work on the board. Individual tasks have at most
// one assignee; group tasks carry a member set bounded by RequiredPeople.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	LongDescription  string     `json:"longDescription,omitempty"`
	Type             TaskType   `json:"type"`
	Priority         Priority   `json:"priority"`
	EstimatedHours   float64    `json:"estimatedHours"`
	AssignedToID     *string    `json:"assignedToId"`
	RequiredSkills   []string   `json:"requiredSkills"`
	Status           TaskStatus `json:"status"`
	Progress         int        `json:"progress"`
	CreatedAt        time.Time  `json:"createdAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	Notes            []string   `json:"notes"`
	Files            []string   `json:"files"`
	IsGroupTask      bool       `json:"isGroupTask,omitempty"`
	RequiredPeople   int        `json:"requiredPeople,omitempty"`
	GroupAssigneeIDs []string   `json:"groupAssigneeIds,omitempty"`
}

// StatusForProgress derives the workflow status from a progress value:
// 0 is PENDING, 100 is COMPLETED, everything between is IN_PROGRESS.
func StatusForProgress(progress int) TaskStatus {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// ClampProgress bounds a progress value to [0, 100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// HasMember reports whether the employee is in the group assignee set.
func (t Task) HasMember(employeeID string) bool {
	for _, id := range t.GroupAssigneeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// IsFull reports whether a group task has reached its headcount.
func (t Task) IsFull() bool {
	return len(t.GroupAssigneeIDs) >= t.headcount()
}

// HoursPerMember is the workload share each group member takes on when
// joining: the estimate split across the required headcount.
func (t Task) HoursPerMember() float64 {
	return t.EstimatedHours / float64(t.headcount())
}

// headcount falls back to 1 when RequiredPeople was never set.
func (t Task) headcount() int {
	if t.RequiredPeople < 1 {
		return 1
	}
	return t.RequiredPeople
}
