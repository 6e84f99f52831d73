// Package ui contains the dashboard application model and TEA implementation.
package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/config"
	"github.com/rlankford/crewboard/internal/domain"
	"github.com/rlankford/crewboard/internal/engine"
	"github.com/rlankford/crewboard/internal/session"
	"github.com/rlankford/crewboard/internal/store"
	"github.com/rlankford/crewboard/internal/ui/styles"
)

// View identifies the active dashboard tab.
type View int

const (
	ViewLogin View = iota
	ViewBoard
	ViewProjects
	ViewTeam
	ViewProducts
	ViewLogs
	ViewAssistant
)

var viewNames = map[View]string{
	ViewBoard:     "Board",
	ViewProjects:  "Projects",
	ViewTeam:      "Team",
	ViewProducts:  "Products",
	ViewLogs:      "Logs",
	ViewAssistant: "Assistant",
}

// tabOrder is the cycle used by tab/shift-tab.
var tabOrder = []View{ViewBoard, ViewProjects, ViewTeam, ViewProducts, ViewLogs, ViewAssistant}

// Analyzer is the slice of the analysis service the dashboard uses.
type Analyzer interface {
	AnalyzeWorkload(ctx context.Context, employees []domain.Employee, tasks []domain.Task) (domain.WorkloadAnalysis, error)
	AnalyzeProduct(ctx context.Context, product domain.Product) (domain.ProductAnalysis, error)
	AnalyzeCompany(ctx context.Context, products []domain.Product) (domain.ProductAnalysis, error)
	Chat(ctx context.Context, question string, history []domain.ChatMessage, employees []domain.Employee, tasks []domain.Task) (string, error)
}

// Deps are the collaborators the model is wired with.
type Deps struct {
	Store    *store.Store
	Engine   *engine.Engine
	Analyzer Analyzer
	Config   *config.Config
	Logger   *slog.Logger
}

// Model is the main application state
type Model struct {
	store    *store.Store
	engine   *engine.Engine
	analyzer Analyzer
	logger   *slog.Logger
	config   *config.Config

	snapshot domain.Snapshot
	session  session.Session

	view   View
	width  int
	height int
	styles *styles.Styles

	// Transient feedback line shown in the status bar.
	status      string
	statusError bool

	login     loginForm
	board     boardState
	projects  projectsState
	team      teamState
	products  productsState
	logs      logsState
	assistant assistantState

	prompt *promptState
	create *createForm

	spinner spinner.Model
	loading bool
}

// New creates a new application model with the given dependencies.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		store:     deps.Store,
		engine:    deps.Engine,
		analyzer:  deps.Analyzer,
		logger:    logger,
		config:    deps.Config,
		snapshot:  deps.Store.Current(),
		view:      ViewLogin,
		styles:    styles.New(),
		login:     newLoginForm(),
		assistant: newAssistantState(),
		spinner:   s,
		width:     100,
		height:    30,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case workloadReportMsg:
		m.loading = false
		m.assistant.workload = &msg.report
		if msg.err != nil {
			m.setError("analysis degraded to fallback")
		}
		return m, nil

	case companyReportMsg:
		m.loading = false
		m.assistant.company = &msg.report
		if msg.err != nil {
			m.setError("analysis degraded to fallback")
		}
		return m, nil

	case productReportMsg:
		m.loading = false
		m.products.report = &msg.report
		if msg.err != nil {
			m.setError("analysis degraded to fallback")
		}
		return m, nil

	case chatReplyMsg:
		m.loading = false
		m.assistant.history = append(m.assistant.history, domain.ChatMessage{
			Role: domain.RoleModel, Text: msg.text, Timestamp: time.Now(),
		})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The login form owns the keyboard until someone signs in.
	if m.view == ViewLogin {
		return m.updateLogin(msg)
	}

	// Modal input grabs everything except escape.
	if m.prompt != nil {
		return m.updatePrompt(msg)
	}
	if m.create != nil {
		return m.updateCreate(msg)
	}
	if m.view == ViewAssistant && m.assistant.input.Focused() {
		return m.updateAssistantInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.view = nextTab(m.view, 1)
		m.status = ""
		return m, nil
	case "shift+tab":
		m.view = nextTab(m.view, -1)
		m.status = ""
		return m, nil

	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		if idx < len(tabOrder) {
			m.view = tabOrder[idx]
			m.status = ""
		}
		return m, nil

	case "Q":
		m.session.SignOut()
		m.view = ViewLogin
		m.login = newLoginForm()
		return m, textinput.Blink
	}

	switch m.view {
	case ViewBoard:
		return m.updateBoard(msg)
	case ViewProjects:
		return m.updateProjects(msg)
	case ViewTeam:
		return m.updateTeam(msg)
	case ViewProducts:
		return m.updateProducts(msg)
	case ViewLogs:
		return m.updateLogs(msg)
	case ViewAssistant:
		return m.updateAssistant(msg)
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.view == ViewLogin {
		return m.viewLogin()
	}

	var body string
	switch m.view {
	case ViewBoard:
		body = m.viewBoard()
	case ViewProjects:
		body = m.viewProjects()
	case ViewTeam:
		body = m.viewTeam()
	case ViewProducts:
		body = m.viewProducts()
	case ViewLogs:
		body = m.viewLogs()
	case ViewAssistant:
		body = m.viewAssistant()
	}

	if m.prompt != nil {
		body = m.viewPrompt()
	}
	if m.create != nil {
		body = m.viewCreate()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		body,
		m.viewStatusBar(),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, v := range tabOrder {
		if v == m.view {
			tabs = append(tabs, m.styles.TabActive.Render(viewNames[v]))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(viewNames[v]))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	title := m.styles.Title.Render("Crewboard")
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, bar))
}

func (m Model) viewStatusBar() string {
	user, _ := m.session.User()
	left := m.styles.StatusMode.Render(user.Name)

	msg := m.status
	style := m.styles.StatusHint
	if msg == "" {
		msg = hintsFor(m.view, m.session.CanManage())
	} else if m.statusError {
		style = m.styles.ErrorText
	}

	return m.styles.StatusBar.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", style.Render(msg)),
	)
}

func hintsFor(v View, canManage bool) string {
	switch v {
	case ViewBoard:
		base := "h/l: columns  j/k: tasks  a: assign  p: progress  n: note  f: file  /: search  s: sort  enter: detail"
		if canManage {
			base += "  c: create  d: delete"
		}
		return base + "  tab: views  q: quit"
	case ViewProjects:
		return "j/k: tasks  enter: join/leave  p: progress  n: note  tab: views  q: quit"
	case ViewTeam:
		return "j/k: people  e: edit profile  tab: views  q: quit"
	case ViewProducts:
		return "j/k: products  c: comment  b: toggle bug  l: log entry  e: description  r: report  tab: views"
	case ViewLogs:
		return "j/k: scroll  tab: views  q: quit"
	case ViewAssistant:
		return "w: workload report  o: company report  i: chat  tab: views  q: quit"
	default:
		return ""
	}
}

func nextTab(v View, delta int) View {
	for i, t := range tabOrder {
		if t == v {
			return tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
		}
	}
	return ViewBoard
}

// setStatus records a transient confirmation for the status bar.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusError = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusError = true
}

// apply runs an engine mutation and refreshes the view snapshot. Validation
// failures surface in the status bar; the snapshot only moves on success.
func (m *Model) apply(op func() (domain.Snapshot, error), success string) {
	snap, err := op()
	if err != nil {
		m.setError(errorLine(err))
		return
	}
	m.snapshot = snap
	m.setStatus(success)
}

func errorLine(err error) string {
	return strings.TrimSpace(err.Error())
}
