package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// projectsState tracks the cursor over active group tasks.
type projectsState struct {
	cursor int
}

func (m Model) groupTasks() []domain.Task {
	return domain.GroupTasks(domain.ActiveTasks(m.snapshot.Tasks))
}

func (m Model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.groupTasks()

	switch msg.String() {
	case "j", "down":
		if m.projects.cursor < len(tasks)-1 {
			m.projects.cursor++
		}
	case "k", "up":
		if m.projects.cursor > 0 {
			m.projects.cursor--
		}

	case "enter":
		if m.projects.cursor >= len(tasks) {
			return m, nil
		}
		task := tasks[m.projects.cursor]
		user, _ := m.session.User()

		if m.session.CanManage() && !task.HasMember(user.ID) {
			// Managers can place anyone on a project.
			var options []promptOption
			for _, e := range m.snapshot.Employees {
				marker := " "
				if task.HasMember(e.ID) {
					marker = "✓"
				}
				options = append(options, promptOption{
					id:    e.ID,
					label: fmt.Sprintf("%s %s (%.0f)", marker, e.Name, e.WorkloadScore),
				})
			}
			taskID := task.ID
			m.prompt = newPickerPrompt("Toggle membership: "+task.Title, options, func(m Model, employeeID string) (Model, tea.Cmd) {
				m.apply(func() (domain.Snapshot, error) {
					return m.engine.ToggleGroupMembership(taskID, employeeID)
				}, "membership updated")
				return m, nil
			})
			return m, nil
		}

		verb := "joined"
		if task.HasMember(user.ID) {
			verb = "left"
		}
		m.apply(func() (domain.Snapshot, error) {
			return m.engine.ToggleGroupMembership(task.ID, user.ID)
		}, verb+" "+task.Title)

	case "p":
		if m.projects.cursor < len(tasks) {
			return m.startProgress(tasks[m.projects.cursor])
		}
	case "n":
		if m.projects.cursor < len(tasks) {
			return m.startNote(tasks[m.projects.cursor])
		}
	}

	return m, nil
}

func (m Model) viewProjects() string {
	tasks := m.groupTasks()
	if len(tasks) == 0 {
		return m.styles.Muted.Render("  no active group projects")
	}

	user, _ := m.session.User()
	var lines []string
	for i, task := range tasks {
		var members []string
		for _, id := range task.GroupAssigneeIDs {
			if emp, ok := m.snapshot.EmployeeByID(id); ok {
				members = append(members, emp.Name)
			}
		}

		capacity := fmt.Sprintf("%d/%d", len(task.GroupAssigneeIDs), task.RequiredPeople)
		if task.IsFull() {
			capacity += " full"
		}

		header := lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.TaskID.Render(task.ID), " ",
			m.styles.PriorityBadge(task.Priority).Render(string(task.Priority)), " ",
			m.styles.TypeBadge.Render(capacity))

		meta := fmt.Sprintf("%.0fh total · %.1fh each · %d%%", task.EstimatedHours, task.HoursPerMember(), task.Progress)
		if task.HasMember(user.ID) {
			meta += " · you're on this"
		}

		body := lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.styles.TaskTitle.Render(task.Title),
			m.styles.CardMeta.Render(meta),
			m.styles.Muted.Render("  "+strings.Join(members, ", ")),
		)

		style := m.styles.Card
		if i == m.projects.cursor {
			style = m.styles.CardActive
		}
		lines = append(lines, style.Width(m.width-6).Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
