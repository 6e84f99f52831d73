package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByCreated  SortField = "created"
	SortByHours    SortField = "hours"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction.
// A new field starts ascending; the same field flips direction.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a list of tasks into a new slice.
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)

	less := func(i, j int) bool { return false }
	switch s.Field {
	case SortByPriority:
		less = func(i, j int) bool {
			return result[i].Priority.Rank() < result[j].Priority.Rank()
		}
	case SortByCreated:
		less = func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
	case SortByHours:
		less = func(i, j int) bool {
			return result[i].EstimatedHours < result[j].EstimatedHours
		}
	default:
		return result
	}

	if s.Order == SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(result, less)
	return result
}
