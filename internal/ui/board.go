package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// boardState tracks cursor position on the individual-task board, plus the
// current search filter and sort.
type boardState struct {
	column int    // 0 = Mandatory, 1 = Open
	row    [2]int // cursor per column
	detail bool
	filter *domain.Filter
	sort   domain.Sort
}

// boardColumns partitions active individual tasks by type, after the search
// filter and sort are applied.
func (m Model) boardColumns() ([]domain.Task, []domain.Task) {
	individual := domain.IndividualTasks(domain.ActiveTasks(m.snapshot.Tasks))
	if m.board.filter != nil {
		individual = m.board.filter.Apply(individual)
	}
	if m.board.sort.Field != "" {
		individual = m.board.sort.Apply(individual)
	}
	return domain.TasksOfType(individual, domain.TypeMandatory),
		domain.TasksOfType(individual, domain.TypeOpen)
}

func (m Model) boardCursorTask() (domain.Task, bool) {
	mandatory, open := m.boardColumns()
	cols := [][]domain.Task{mandatory, open}
	col := cols[m.board.column]
	row := m.board.row[m.board.column]
	if row >= len(col) {
		return domain.Task{}, false
	}
	return col[row], true
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mandatory, open := m.boardColumns()
	cols := [][]domain.Task{mandatory, open}

	switch msg.String() {
	case "h", "left":
		m.board.column = 0
	case "l", "right":
		m.board.column = 1
	case "j", "down":
		if m.board.row[m.board.column] < len(cols[m.board.column])-1 {
			m.board.row[m.board.column]++
		}
	case "k", "up":
		if m.board.row[m.board.column] > 0 {
			m.board.row[m.board.column]--
		}

	case "enter":
		m.board.detail = !m.board.detail

	case "/":
		query := ""
		if m.board.filter != nil {
			query = m.board.filter.SearchQuery
		}
		m.prompt = newTextPrompt("Search tasks", "title or id", query, func(m Model, value string) (Model, tea.Cmd) {
			if m.board.filter == nil {
				m.board.filter = domain.NewFilter()
			}
			m.board.filter.SearchQuery = strings.TrimSpace(value)
			m.board.row = [2]int{}
			return m, nil
		})

	case "x":
		if m.board.filter != nil {
			m.board.filter.Clear()
		}
		m.board.sort = domain.Sort{}
		m.board.row = [2]int{}

	case "s":
		m.board.sort.Toggle(domain.SortByPriority)
	case "S":
		m.board.sort.Toggle(domain.SortByHours)

	case "a":
		task, ok := m.boardCursorTask()
		if !ok {
			return m, nil
		}
		return m.startAssign(task)

	case "p":
		task, ok := m.boardCursorTask()
		if !ok {
			return m, nil
		}
		return m.startProgress(task)

	case "n":
		task, ok := m.boardCursorTask()
		if !ok {
			return m, nil
		}
		return m.startNote(task)

	case "f":
		task, ok := m.boardCursorTask()
		if !ok {
			return m, nil
		}
		return m.startFile(task)

	case "c":
		if !m.session.CanManage() {
			m.setError("only managers can create tasks")
			return m, nil
		}
		m.create = newCreateForm()
		return m, nil

	case "d":
		if !m.session.CanManage() {
			m.setError("only managers can delete tasks")
			return m, nil
		}
		task, ok := m.boardCursorTask()
		if !ok {
			return m, nil
		}
		m.apply(func() (domain.Snapshot, error) { return m.engine.DeleteTask(task.ID) },
			"deleted "+task.Title)
		if m.board.row[m.board.column] > 0 {
			m.board.row[m.board.column]--
		}
	}

	return m, nil
}

// startAssign opens the assignee picker. Managers can pick anyone; everyone
// else can only take the task themselves.
func (m Model) startAssign(task domain.Task) (tea.Model, tea.Cmd) {
	user, _ := m.session.User()

	if !m.session.CanManage() {
		m.apply(func() (domain.Snapshot, error) {
			return m.engine.AssignIndividual(task.ID, user.ID)
		}, "assigned to you")
		return m, nil
	}

	var options []promptOption
	for _, e := range m.snapshot.Employees {
		options = append(options, promptOption{
			id:    e.ID,
			label: fmt.Sprintf("%s (%.0f)", e.Name, e.WorkloadScore),
		})
	}
	taskID := task.ID
	m.prompt = newPickerPrompt("Assign: "+task.Title, options, func(m Model, employeeID string) (Model, tea.Cmd) {
		m.apply(func() (domain.Snapshot, error) {
			return m.engine.AssignIndividual(taskID, employeeID)
		}, "task assigned")
		return m, nil
	})
	return m, nil
}

func (m Model) startProgress(task domain.Task) (tea.Model, tea.Cmd) {
	taskID := task.ID
	longDesc := task.LongDescription
	initial := strconv.Itoa(task.Progress)
	m.prompt = newTextPrompt("Progress (0-100): "+task.Title, "0-100", initial, func(m Model, value string) (Model, tea.Cmd) {
		progress, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			m.setError("progress must be a number")
			return m, nil
		}
		m.apply(func() (domain.Snapshot, error) {
			return m.engine.UpdateProgress(taskID, progress, longDesc)
		}, "progress updated")
		return m, nil
	})
	return m, nil
}

func (m Model) startNote(task domain.Task) (tea.Model, tea.Cmd) {
	taskID := task.ID
	m.prompt = newTextPrompt("Add note: "+task.Title, "note text", "", func(m Model, value string) (Model, tea.Cmd) {
		m.apply(func() (domain.Snapshot, error) {
			return m.engine.AddNote(taskID, value)
		}, "note added")
		return m, nil
	})
	return m, nil
}

func (m Model) startFile(task domain.Task) (tea.Model, tea.Cmd) {
	taskID := task.ID
	m.prompt = newTextPrompt("Attach file: "+task.Title, "filename", "", func(m Model, value string) (Model, tea.Cmd) {
		m.apply(func() (domain.Snapshot, error) {
			return m.engine.AddFile(taskID, value)
		}, "file attached")
		return m, nil
	})
	return m, nil
}

func (m Model) viewBoard() string {
	if m.board.detail {
		if task, ok := m.boardCursorTask(); ok {
			return m.viewTaskDetail(task)
		}
	}

	mandatory, open := m.boardColumns()
	colWidth := m.width/2 - 2

	left := m.renderColumn("Mandatory", mandatory, m.board.column == 0, m.board.row[0], colWidth)
	right := m.renderColumn("Open", open, m.board.column == 1, m.board.row[1], colWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderColumn(title string, tasks []domain.Task, active bool, cursor int, width int) string {
	header := m.styles.ColumnHeader
	if active {
		header = m.styles.ColumnHeaderActive
	}

	lines := []string{header.Render(fmt.Sprintf("%s (%d)", title, len(tasks)))}
	if len(tasks) == 0 {
		lines = append(lines, m.styles.Muted.Render("  nothing here"))
	}
	for i, task := range tasks {
		lines = append(lines, m.renderCard(task, active && i == cursor, width-4))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Column.Width(width).Height(m.contentHeight() - 2).Render(body)
}

func (m Model) renderCard(task domain.Task, active bool, width int) string {
	style := m.styles.Card
	if active {
		style = m.styles.CardActive
	}

	badge := m.styles.PriorityBadge(task.Priority).Render(string(task.Priority))
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.TaskID.Render(task.ID), " ", badge)

	assignee := "unassigned"
	if task.AssignedToID != nil {
		if emp, ok := m.snapshot.EmployeeByID(*task.AssignedToID); ok {
			assignee = emp.Name
		}
	}
	meta := m.styles.CardMeta.Render(fmt.Sprintf("%s · %.0fh · %d%%", assignee, task.EstimatedHours, task.Progress))

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.TaskTitle.Render(task.Title),
		meta,
	))
}

func (m Model) viewTaskDetail(task domain.Task) string {
	assignee := "unassigned"
	if task.AssignedToID != nil {
		if emp, ok := m.snapshot.EmployeeByID(*task.AssignedToID); ok {
			assignee = emp.Name
		}
	}

	lines := []string{
		m.styles.PanelTitle.Render(task.Title),
		m.styles.Label.Render(task.Description),
		"",
		fmt.Sprintf("%s  %s  %s",
			m.styles.PriorityBadge(task.Priority).Render(string(task.Priority)),
			m.styles.TypeBadge.Render(string(task.Type)),
			m.styles.CardMeta.Render(fmt.Sprintf("%s · %.0fh · %d%% · %s", assignee, task.EstimatedHours, task.Progress, task.Status))),
	}

	if task.LongDescription != "" {
		lines = append(lines, "", m.styles.Label.Render(task.LongDescription))
	}
	if len(task.RequiredSkills) > 0 {
		lines = append(lines, "", m.styles.CardMeta.Render("skills: "+strings.Join(task.RequiredSkills, ", ")))
	}
	if len(task.Notes) > 0 {
		lines = append(lines, "", m.styles.PanelTitle.Render("Notes"))
		for _, n := range task.Notes {
			lines = append(lines, m.styles.Label.Render("  "+n))
		}
	}
	if len(task.Files) > 0 {
		lines = append(lines, "", m.styles.PanelTitle.Render("Files"))
		for _, f := range task.Files {
			lines = append(lines, m.styles.Label.Render("  "+f))
		}
	}
	lines = append(lines, "", m.styles.Muted.Render("enter: back"))

	return m.styles.Panel.Width(m.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
