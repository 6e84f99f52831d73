package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
	"github.com/rlankford/crewboard/internal/engine"
)

// teamState tracks the cursor over the roster.
type teamState struct {
	cursor int
}

const workloadBarWidth = 24

func (m Model) updateTeam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.team.cursor < len(m.snapshot.Employees)-1 {
			m.team.cursor++
		}
	case "k", "up":
		if m.team.cursor > 0 {
			m.team.cursor--
		}

	case "e":
		if m.team.cursor >= len(m.snapshot.Employees) {
			return m, nil
		}
		target := m.snapshot.Employees[m.team.cursor]
		user, _ := m.session.User()
		if !m.session.CanManage() && target.ID != user.ID {
			m.setError("you can only edit your own profile")
			return m, nil
		}
		return m.startProfileEdit(target)
	}
	return m, nil
}

// startProfileEdit chains prompts for the editable profile fields. Workload
// score and status are not editable here.
func (m Model) startProfileEdit(emp domain.Employee) (tea.Model, tea.Cmd) {
	update := engine.ProfileUpdate{
		EmployeeID:    emp.ID,
		Name:          emp.Name,
		Role:          emp.Role,
		Bio:           emp.Bio,
		ResumeLink:    emp.ResumeLink,
		PortfolioLink: emp.PortfolioLink,
		Skills:        strings.Join(emp.Skills, ", "),
	}

	m.prompt = newTextPrompt("Name", "full name", update.Name, func(m Model, name string) (Model, tea.Cmd) {
		update.Name = name
		m.prompt = newTextPrompt("Role", "job title", update.Role, func(m Model, role string) (Model, tea.Cmd) {
			update.Role = role
			m.prompt = newTextPrompt("Bio", "short bio", update.Bio, func(m Model, bio string) (Model, tea.Cmd) {
				update.Bio = bio
				m.prompt = newTextPrompt("Skills", "comma separated", update.Skills, func(m Model, skills string) (Model, tea.Cmd) {
					update.Skills = skills
					m.apply(func() (domain.Snapshot, error) {
						return m.engine.UpdateProfile(update)
					}, "profile updated")
					return m, nil
				})
				return m, nil
			})
			return m, nil
		})
		return m, nil
	})
	return m, nil
}

func (m Model) viewTeam() string {
	var lines []string
	for i, emp := range m.snapshot.Employees {
		style := m.styles.Card
		if i == m.team.cursor {
			style = m.styles.CardActive
		}
		lines = append(lines, style.Width(m.width-6).Render(m.renderEmployee(emp)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderEmployee(emp domain.Employee) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.TaskTitle.Render(emp.Name), "  ",
		m.styles.CardMeta.Render(emp.Role), "  ",
		m.styles.StatusBadge(emp.Status).Render(string(emp.Status)),
	)

	// The CEO's score keeps moving underneath the custom status label, but
	// the bar shows MAX rather than a number.
	scoreLabel := fmt.Sprintf("%3.0f", emp.WorkloadScore)
	if emp.AccessLevel == domain.AccessCEO {
		scoreLabel = "MAX"
	}

	filled := int(emp.WorkloadScore / domain.MaxWorkloadScore * workloadBarWidth)
	if filled > workloadBarWidth {
		filled = workloadBarWidth
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.WorkloadBarFill(emp.Status).Render(strings.Repeat("█", filled)),
		m.styles.WorkloadBarEmpty.Render(strings.Repeat("░", workloadBarWidth-filled)),
		" ", m.styles.CardMeta.Render(scoreLabel),
	)

	skills := m.styles.Muted.Render(strings.Join(emp.Skills, " · "))
	return lipgloss.JoinVertical(lipgloss.Left, header, bar, skills)
}
