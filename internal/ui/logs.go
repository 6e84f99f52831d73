package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// logsState tracks the scroll offset over the completed-task log.
type logsState struct {
	offset int
}

func (m Model) updateLogs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	completed := domain.CompletedTasks(m.snapshot.Tasks)
	switch msg.String() {
	case "j", "down":
		if m.logs.offset < len(completed)-1 {
			m.logs.offset++
		}
	case "k", "up":
		if m.logs.offset > 0 {
			m.logs.offset--
		}
	}
	return m, nil
}

// viewLogs lists completed tasks, most recently finished first.
func (m Model) viewLogs() string {
	completed := domain.CompletedTasks(m.snapshot.Tasks)
	if len(completed) == 0 {
		return m.styles.Muted.Render("  nothing completed yet")
	}

	var lines []string
	for _, task := range completed[m.logs.offset:] {
		stamp := "          "
		if task.CompletedAt != nil {
			stamp = task.CompletedAt.Format("2006-01-02")
		}
		assignee := ""
		if task.AssignedToID != nil {
			if emp, ok := m.snapshot.EmployeeByID(*task.AssignedToID); ok {
				assignee = " · " + emp.Name
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.CardMeta.Render(stamp), "  ",
			m.styles.TaskTitle.Render(task.Title),
			m.styles.Muted.Render(fmt.Sprintf("%s · %.0fh", assignee, task.EstimatedHours)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
