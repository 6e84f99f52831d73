package domain

import (
	"sort"
	"strings"
)

// View partitions used by the presentation layer. All of these return fresh
// slices; the inputs are never reordered.

// ActiveTasks returns tasks that are not yet completed.
func ActiveTasks(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != StatusCompleted {
			result = append(result, t)
		}
	}
	return result
}

// CompletedTasks returns completed tasks, most recently completed first.
// Tasks without a completion stamp sort last.
func CompletedTasks(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		ti, tj := result[i].CompletedAt, result[j].CompletedAt
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
	return result
}

// IndividualTasks returns the non-group partition.
func IndividualTasks(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsGroupTask {
			result = append(result, t)
		}
	}
	return result
}

// GroupTasks returns the group partition.
func GroupTasks(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsGroupTask {
			result = append(result, t)
		}
	}
	return result
}

// TasksOfType returns tasks of the given type.
func TasksOfType(tasks []Task, tt TaskType) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Type == tt {
			result = append(result, t)
		}
	}
	return result
}

// Filter represents task filtering state
type Filter struct {
	Status      map[TaskStatus]bool
	Priority    map[Priority]bool
	Type        map[TaskType]bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status:   make(map[TaskStatus]bool),
		Priority: make(map[Priority]bool),
		Type:     make(map[TaskType]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 ||
		len(f.Priority) > 0 ||
		len(f.Type) > 0 ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	if len(f.Status) > 0 && !f.Status[t.Status] {
		return false
	}

	if len(f.Priority) > 0 && !f.Priority[t.Priority] {
		return false
	}

	if len(f.Type) > 0 && !f.Type[t.Type] {
		return false
	}

	// Search query (case-insensitive, matches title or ID)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		title := strings.ToLower(t.Title)
		id := strings.ToLower(t.ID)

		if !strings.Contains(title, query) && !strings.Contains(id, query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = make(map[TaskStatus]bool)
	f.Priority = make(map[Priority]bool)
	f.Type = make(map[TaskType]bool)
	f.SearchQuery = ""
}

// ToggleStatus toggles a status filter
func (f *Filter) ToggleStatus(s TaskStatus) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}

// ToggleType toggles a type filter
func (f *Filter) ToggleType(t TaskType) {
	if f.Type[t] {
		delete(f.Type, t)
	} else {
		f.Type[t] = true
	}
}
