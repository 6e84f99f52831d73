// Package styles holds the lipgloss styles shared by the dashboard views.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Chrome
	Title     lipgloss.Style
	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Board
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	TaskID     lipgloss.Style
	TaskTitle  lipgloss.Style
	CardMeta   lipgloss.Style

	// Badges
	PriorityBadge func(p domain.Priority) lipgloss.Style
	StatusBadge   func(s domain.EmployeeStatus) lipgloss.Style
	TypeBadge     lipgloss.Style

	// Team view
	WorkloadBarFill  func(s domain.EmployeeStatus) lipgloss.Style
	WorkloadBarEmpty lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Forms and panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Label      lipgloss.Style
	ErrorText  lipgloss.Style
	Muted      lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1),

		Tab: lipgloss.NewStyle().
			Foreground(Overlay1).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 2),

		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		TaskID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		CardMeta: lipgloss.NewStyle().
			Foreground(Subtext0),

		PriorityBadge: func(p domain.Priority) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(PriorityColor(p)).
				Padding(0, 1).
				Bold(true)
		},

		StatusBadge: func(s domain.EmployeeStatus) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(StatusColor(s)).
				Padding(0, 1).
				Bold(true)
		},

		TypeBadge: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface1).
			Padding(0, 1),

		WorkloadBarFill: func(s domain.EmployeeStatus) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(StatusColor(s))
		},

		WorkloadBarEmpty: lipgloss.NewStyle().
			Foreground(Surface1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(1, 2),

		PanelTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0),

		ErrorText: lipgloss.NewStyle().
			Foreground(Red),

		Muted: lipgloss.NewStyle().
			Foreground(Overlay0),
	}
}
