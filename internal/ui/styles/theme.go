package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Teal     = lipgloss.Color("#8bd5ca")
	Sky      = lipgloss.Color("#91d7e3")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// PriorityColor maps a task priority to its badge color.
func PriorityColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityCritical:
		return Red
	case domain.PriorityHigh:
		return Peach
	case domain.PriorityMedium:
		return Yellow
	case domain.PriorityLow:
		return Green
	default:
		return Overlay0
	}
}

// StatusColor maps an employee workload status to a color. Custom statuses
// (the CEO override) get the accent color.
func StatusColor(s domain.EmployeeStatus) lipgloss.Color {
	switch s {
	case domain.StatusOptimal:
		return Green
	case domain.StatusOverloaded:
		return Red
	case domain.StatusUnderutilized:
		return Sky
	default:
		return Mauve
	}
}

// TaskStatusColor maps a task status to a color.
func TaskStatusColor(s domain.TaskStatus) lipgloss.Color {
	switch s {
	case domain.StatusPending:
		return Blue
	case domain.StatusInProgress:
		return Yellow
	case domain.StatusCompleted:
		return Green
	default:
		return Overlay0
	}
}
