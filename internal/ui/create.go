package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
	"github.com/rlankford/crewboard/internal/engine"
)

// createForm is the new-task overlay. Text fields are bubbles inputs; the
// enum fields cycle with space.
type createForm struct {
	title       textinput.Model
	description textinput.Model
	hours       textinput.Model
	skills      textinput.Model
	people      textinput.Model

	taskType domain.TaskType
	priority domain.Priority
	group    bool

	focus int
}

const (
	fieldTitle = iota
	fieldDescription
	fieldHours
	fieldSkills
	fieldType
	fieldPriority
	fieldGroup
	fieldPeople
	fieldCount
)

var priorityCycle = []domain.Priority{
	domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical,
}

func newCreateForm() *createForm {
	mk := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		in.Width = width
		return in
	}

	f := &createForm{
		title:       mk("title", 40),
		description: mk("description", 40),
		hours:       mk("estimated hours", 10),
		skills:      mk("skills, comma separated", 40),
		people:      mk("required people", 6),
		taskType:    domain.TypeOpen,
		priority:    domain.PriorityMedium,
	}
	f.title.Focus()
	return f
}

func (f *createForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.description, &f.hours, &f.skills, nil, nil, nil, &f.people}
}

func (f *createForm) setFocus(idx int) {
	f.focus = idx
	for i, in := range f.inputs() {
		if in == nil {
			continue
		}
		if i == idx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *createForm) draft() engine.TaskDraft {
	hours, _ := strconv.ParseFloat(strings.TrimSpace(f.hours.Value()), 64)
	people, _ := strconv.Atoi(strings.TrimSpace(f.people.Value()))
	return engine.TaskDraft{
		Title:          f.title.Value(),
		Description:    f.description.Value(),
		Type:           f.taskType,
		Priority:       f.priority,
		EstimatedHours: hours,
		RequiredSkills: f.skills.Value(),
		IsGroupTask:    f.group,
		RequiredPeople: people,
	}
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.create

	switch msg.String() {
	case "esc":
		m.create = nil
		return m, nil

	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return m, textinput.Blink
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case "enter":
		m.apply(func() (domain.Snapshot, error) { return m.engine.CreateTask(f.draft()) },
			"task created")
		if !m.statusError {
			m.create = nil
		}
		return m, nil
	}

	switch f.focus {
	case fieldType:
		if msg.String() == " " {
			if f.taskType == domain.TypeOpen {
				f.taskType = domain.TypeMandatory
			} else {
				f.taskType = domain.TypeOpen
			}
		}
		return m, nil
	case fieldPriority:
		if msg.String() == " " {
			for i, p := range priorityCycle {
				if p == f.priority {
					f.priority = priorityCycle[(i+1)%len(priorityCycle)]
					break
				}
			}
		}
		return m, nil
	case fieldGroup:
		if msg.String() == " " {
			f.group = !f.group
		}
		return m, nil
	}

	in := f.inputs()[f.focus]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m Model) viewCreate() string {
	f := m.create

	label := func(idx int, name string) string {
		if f.focus == idx {
			return m.styles.ColumnHeaderActive.Render(name)
		}
		return m.styles.Label.Render(name)
	}
	toggle := func(idx int, name, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label(idx, name), " ", m.styles.TypeBadge.Render(value))
	}

	groupValue := "no"
	if f.group {
		groupValue = "yes"
	}

	rows := []string{
		m.styles.PanelTitle.Render("New task"),
		label(fieldTitle, "Title"), f.title.View(),
		label(fieldDescription, "Description"), f.description.View(),
		label(fieldHours, "Hours"), f.hours.View(),
		label(fieldSkills, "Skills"), f.skills.View(),
		toggle(fieldType, "Type", string(f.taskType)),
		toggle(fieldPriority, "Priority", string(f.priority)),
		toggle(fieldGroup, "Group task", groupValue),
	}
	if f.group {
		rows = append(rows, label(fieldPeople, "People"), f.people.View())
	}
	rows = append(rows, "", m.styles.Muted.Render("tab: next field  space: cycle  enter: create  esc: cancel"))

	panel := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, panel)
}
