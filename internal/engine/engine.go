// Package engine implements the task assignment state machine: how tasks move
// between unassigned, assigned and group states, and how assignment actions
// feed employee workload.
//
// The engine trusts caller-supplied employee IDs. Authorization (who may
// create, delete, or act as whom) is the presentation layer's job.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rlankford/crewboard/internal/domain"
	"github.com/rlankford/crewboard/internal/store"
	"github.com/rlankford/crewboard/internal/util"
)

// Engine applies user actions to the snapshot store. Every operation commits
// all-or-nothing: a validation failure leaves the store untouched.
type Engine struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
	newID  func(prefix string) string
}

// New creates an engine backed by the given store.
func New(st *store.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:  st,
		logger: logger,
		now:    time.Now,
		newID:  util.NewID,
	}
}

// AssignIndividual assigns a non-group task to an employee and folds the
// task's estimated hours into their workload. Re-assignment overwrites the
// previous assignee without consulting them, and completed tasks may still be
// assigned.
func (e *Engine) AssignIndividual(taskID, employeeID string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		ti := taskIndex(snap, taskID)
		if ti < 0 {
			return domain.Snapshot{}, fmt.Errorf("assign task %s: %w", taskID, domain.ErrNotFound)
		}
		task := &snap.Tasks[ti]
		if task.IsGroupTask {
			return domain.Snapshot{}, &domain.InvalidOperationError{
				Op:     "assign",
				TaskID: taskID,
				Reason: "group tasks take members, not a single assignee",
			}
		}

		ei := employeeIndex(snap, employeeID)
		if ei < 0 {
			return domain.Snapshot{}, fmt.Errorf("assign to employee %s: %w", employeeID, domain.ErrNotFound)
		}

		id := employeeID
		task.AssignedToID = &id
		snap.Employees[ei] = domain.ApplyWorkloadDelta(snap.Employees[ei], task.EstimatedHours)

		e.logger.Debug("task assigned", "task", taskID, "employee", employeeID)
		return snap, nil
	})
}

// ToggleGroupMembership joins or leaves a group task. Joining a full group is
// a silent no-op. Leaving never reverses the workload added on join; the
// score is a one-way ledger.
func (e *Engine) ToggleGroupMembership(taskID, employeeID string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		ti := taskIndex(snap, taskID)
		if ti < 0 {
			return domain.Snapshot{}, fmt.Errorf("toggle membership on task %s: %w", taskID, domain.ErrNotFound)
		}
		task := &snap.Tasks[ti]
		if !task.IsGroupTask {
			return domain.Snapshot{}, &domain.InvalidOperationError{
				Op:     "toggle-membership",
				TaskID: taskID,
				Reason: "not a group task",
			}
		}

		if task.HasMember(employeeID) {
			members := make([]string, 0, len(task.GroupAssigneeIDs)-1)
			for _, id := range task.GroupAssigneeIDs {
				if id != employeeID {
					members = append(members, id)
				}
			}
			task.GroupAssigneeIDs = members
			e.logger.Debug("left group task", "task", taskID, "employee", employeeID)
			return snap, nil
		}

		if task.IsFull() {
			// Full group: nothing happens, and that is not an error.
			return snap, nil
		}

		ei := employeeIndex(snap, employeeID)
		if ei < 0 {
			return domain.Snapshot{}, fmt.Errorf("join as employee %s: %w", employeeID, domain.ErrNotFound)
		}

		task.GroupAssigneeIDs = append(task.GroupAssigneeIDs, employeeID)
		snap.Employees[ei] = domain.ApplyWorkloadDelta(snap.Employees[ei], task.HoursPerMember())

		e.logger.Debug("joined group task", "task", taskID, "employee", employeeID,
			"members", len(task.GroupAssigneeIDs))
		return snap, nil
	})
}

// UpdateProgress sets a task's progress (clamped to [0,100]), re-derives its
// status, and stores the long description. CompletedAt is stamped on the
// first transition to COMPLETED and never cleared or overwritten, even when
// progress later drops back below 100.
func (e *Engine) UpdateProgress(taskID string, progress int, longDescription string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		ti := taskIndex(snap, taskID)
		if ti < 0 {
			return domain.Snapshot{}, fmt.Errorf("update progress on task %s: %w", taskID, domain.ErrNotFound)
		}
		task := &snap.Tasks[ti]

		task.Progress = domain.ClampProgress(progress)
		task.Status = domain.StatusForProgress(task.Progress)
		task.LongDescription = longDescription

		if task.Status == domain.StatusCompleted && task.CompletedAt == nil {
			now := e.now()
			task.CompletedAt = &now
		}

		e.logger.Debug("progress updated", "task", taskID, "progress", task.Progress, "status", task.Status)
		return snap, nil
	})
}

// TaskDraft carries the user-supplied fields for a new task. Skills arrive as
// a free-text comma list.
type TaskDraft struct {
	Title           string
	Description     string
	LongDescription string
	Type            domain.TaskType
	Priority        domain.Priority
	EstimatedHours  float64
	RequiredSkills  string
	IsGroupTask     bool
	RequiredPeople  int
}

// CreateTask validates a draft and prepends the new task to the board:
// PENDING, zero progress, unassigned.
func (e *Engine) CreateTask(draft TaskDraft) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		if err := validateDraft(draft); err != nil {
			return domain.Snapshot{}, err
		}

		task := domain.Task{
			ID:               e.newID("t"),
			Title:            strings.TrimSpace(draft.Title),
			Description:      strings.TrimSpace(draft.Description),
			LongDescription:  draft.LongDescription,
			Type:             draft.Type,
			Priority:         draft.Priority,
			EstimatedHours:   draft.EstimatedHours,
			AssignedToID:     nil,
			RequiredSkills:   ParseSkills(draft.RequiredSkills),
			Status:           domain.StatusPending,
			Progress:         0,
			CreatedAt:        e.now(),
			Notes:            []string{},
			Files:            []string{},
			IsGroupTask:      draft.IsGroupTask,
			GroupAssigneeIDs: []string{},
		}
		if draft.IsGroupTask {
			task.RequiredPeople = draft.RequiredPeople
		}

		snap.Tasks = append([]domain.Task{task}, snap.Tasks...)

		e.logger.Info("task created", "task", task.ID, "title", task.Title, "group", task.IsGroupTask)
		return snap, nil
	})
}

// DeleteTask removes a task outright. Workload already applied to past
// assignees stays applied, same as leaving a group.
func (e *Engine) DeleteTask(taskID string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		ti := taskIndex(snap, taskID)
		if ti < 0 {
			return domain.Snapshot{}, fmt.Errorf("delete task %s: %w", taskID, domain.ErrNotFound)
		}
		snap.Tasks = append(snap.Tasks[:ti], snap.Tasks[ti+1:]...)
		e.logger.Info("task deleted", "task", taskID)
		return snap, nil
	})
}

// AddNote appends a timestamped entry to the task's activity log.
func (e *Engine) AddNote(taskID, text string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		if strings.TrimSpace(text) == "" {
			return domain.Snapshot{}, &domain.ValidationError{Field: "note", Message: "must not be empty"}
		}
		ti := taskIndex(snap, taskID)
		if ti < 0 {
			return domain.Snapshot{}, fmt.Errorf("add note to task %s: %w", taskID, domain.ErrNotFound)
		}
		task := &snap.Tasks[ti]
		task.Notes = append(task.Notes, fmt.Sprintf("%s: %s", e.now().Format("15:04"), text))
		return snap, nil
	})
}

// AddFile appends an attachment name to the task. Duplicates are allowed.
func (e *Engine) AddFile(taskID, name string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		if strings.TrimSpace(name) == "" {
			return domain.Snapshot{}, &domain.ValidationError{Field: "file", Message: "must not be empty"}
		}
		ti := taskIndex(snap, taskID)
		if ti < 0 {
			return domain.Snapshot{}, fmt.Errorf("add file to task %s: %w", taskID, domain.ErrNotFound)
		}
		task := &snap.Tasks[ti]
		task.Files = append(task.Files, name)
		return snap, nil
	})
}

// ProfileUpdate carries editable profile fields. Workload score, status,
// access level and credentials are not editable through profile updates.
type ProfileUpdate struct {
	EmployeeID    string
	Name          string
	Role          string
	Bio           string
	ResumeLink    string
	PortfolioLink string
	Skills        string // free-text comma list
}

// UpdateProfile edits an employee's profile fields.
func (e *Engine) UpdateProfile(update ProfileUpdate) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		if strings.TrimSpace(update.Name) == "" {
			return domain.Snapshot{}, &domain.ValidationError{Field: "name", Message: "must not be empty"}
		}
		ei := employeeIndex(snap, update.EmployeeID)
		if ei < 0 {
			return domain.Snapshot{}, fmt.Errorf("update profile %s: %w", update.EmployeeID, domain.ErrNotFound)
		}

		emp := &snap.Employees[ei]
		emp.Name = strings.TrimSpace(update.Name)
		emp.Role = strings.TrimSpace(update.Role)
		emp.Bio = update.Bio
		emp.ResumeLink = update.ResumeLink
		emp.PortfolioLink = update.PortfolioLink
		emp.Skills = ParseSkills(update.Skills)

		e.logger.Debug("profile updated", "employee", update.EmployeeID)
		return snap, nil
	})
}

// ParseSkills splits a free-text comma list into trimmed, non-empty entries.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func validateDraft(draft TaskDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return &domain.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.TrimSpace(draft.Description) == "" {
		return &domain.ValidationError{Field: "description", Message: "must not be empty"}
	}
	switch draft.Type {
	case domain.TypeMandatory, domain.TypeOpen:
	default:
		return &domain.ValidationError{Field: "type", Message: fmt.Sprintf("unknown task type %q", draft.Type)}
	}
	switch draft.Priority {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical:
	default:
		return &domain.ValidationError{Field: "priority", Message: fmt.Sprintf("unknown priority %q", draft.Priority)}
	}
	if draft.EstimatedHours <= 0 {
		return &domain.ValidationError{Field: "estimatedHours", Message: "must be positive"}
	}
	if draft.IsGroupTask && draft.RequiredPeople < 2 {
		return &domain.ValidationError{Field: "requiredPeople", Message: "group tasks need at least 2 people"}
	}
	return nil
}

func taskIndex(snap domain.Snapshot, id string) int {
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func employeeIndex(snap domain.Snapshot, id string) int {
	for i := range snap.Employees {
		if snap.Employees[i].ID == id {
			return i
		}
	}
	return -1
}

func productIndex(snap domain.Snapshot, id string) int {
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			return i
		}
	}
	return -1
}
