package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// promptOption is one entry in a picker prompt.
type promptOption struct {
	id    string
	label string
}

// promptState is a modal single-value input: either a text line or a picker.
// submit receives the text value or the selected option id.
type promptState struct {
	title   string
	input   textinput.Model
	options []promptOption
	cursor  int
	submit  func(m Model, value string) (Model, tea.Cmd)
}

func newTextPrompt(title, placeholder, initial string, submit func(m Model, value string) (Model, tea.Cmd)) *promptState {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 200
	input.Width = 48
	input.SetValue(initial)
	input.Focus()
	return &promptState{title: title, input: input, submit: submit}
}

func newPickerPrompt(title string, options []promptOption, submit func(m Model, value string) (Model, tea.Cmd)) *promptState {
	return &promptState{title: title, options: options, submit: submit}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.prompt

	switch msg.String() {
	case "esc":
		m.prompt = nil
		return m, nil

	case "enter":
		m.prompt = nil
		if len(p.options) > 0 {
			return p.submit(m, p.options[p.cursor].id)
		}
		return p.submit(m, p.input.Value())
	}

	if len(p.options) > 0 {
		switch msg.String() {
		case "j", "down":
			if p.cursor < len(p.options)-1 {
				p.cursor++
			}
		case "k", "up":
			if p.cursor > 0 {
				p.cursor--
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return m, cmd
}

func (m Model) viewPrompt() string {
	p := m.prompt

	var body string
	if len(p.options) > 0 {
		var lines []string
		for i, opt := range p.options {
			if i == p.cursor {
				lines = append(lines, m.styles.TabActive.Render(opt.label))
			} else {
				lines = append(lines, m.styles.Label.Render("  "+opt.label))
			}
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	} else {
		body = p.input.View()
	}

	panel := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PanelTitle.Render(p.title),
		body,
		"",
		m.styles.Muted.Render("enter: confirm  esc: cancel"),
	))
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, panel)
}

// contentHeight is the body area between the tab bar and the status bar.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 4 {
		h = 4
	}
	return h
}
