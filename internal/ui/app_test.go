package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlankford/crewboard/internal/config"
	"github.com/rlankford/crewboard/internal/domain"
	"github.com/rlankford/crewboard/internal/engine"
	"github.com/rlankford/crewboard/internal/store"
)

// stubAnalyzer returns canned reports without touching the network.
type stubAnalyzer struct {
	workloadCalls int
}

func (s *stubAnalyzer) AnalyzeWorkload(ctx context.Context, employees []domain.Employee, tasks []domain.Task) (domain.WorkloadAnalysis, error) {
	s.workloadCalls++
	return domain.WorkloadAnalysis{Summary: "balanced", EfficiencyScore: 80}, nil
}

func (s *stubAnalyzer) AnalyzeProduct(ctx context.Context, product domain.Product) (domain.ProductAnalysis, error) {
	return domain.ProductAnalysis{Summary: "healthy"}, nil
}

func (s *stubAnalyzer) AnalyzeCompany(ctx context.Context, products []domain.Product) (domain.ProductAnalysis, error) {
	return domain.ProductAnalysis{}, errors.New("offline")
}

func (s *stubAnalyzer) Chat(ctx context.Context, question string, history []domain.ChatMessage, employees []domain.Employee, tasks []domain.Task) (string, error) {
	return "answer", nil
}

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Employees: []domain.Employee{
			{ID: "e1", Name: "Jessica Tran", Email: "jessica@crewboard.dev", Password: "pw",
				AccessLevel: domain.AccessManager, WorkloadScore: 50, Status: domain.StatusOptimal},
			{ID: "e2", Name: "Mike Delgado", Email: "mike@crewboard.dev", Password: "pw",
				AccessLevel: domain.AccessEmployee, WorkloadScore: 40, Status: domain.StatusOptimal},
		},
		Tasks: []domain.Task{
			{ID: "t1", Title: "Fix exports", Description: "d", Type: domain.TypeOpen,
				Priority: domain.PriorityMedium, EstimatedHours: 4,
				Status: domain.StatusPending, Notes: []string{}, Files: []string{}},
			{ID: "t2", Title: "Search overhaul", Description: "d", Type: domain.TypeMandatory,
				Priority: domain.PriorityHigh, EstimatedHours: 12, IsGroupTask: true,
				RequiredPeople: 2, GroupAssigneeIDs: []string{}, Status: domain.StatusPending,
				Notes: []string{}, Files: []string{}},
		},
		Products: []domain.Product{
			{ID: "p1", Name: "Pulse", Status: domain.ProductLive},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	st := store.New(testSnapshot())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Deps{
		Store:    st,
		Engine:   engine.New(st, logger),
		Analyzer: &stubAnalyzer{},
		Config:   config.DefaultConfig(),
		Logger:   logger,
	})
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func signIn(m Model, email string) Model {
	m = typeText(m, email)
	m = press(m, "tab")
	m = typeText(m, "pw")
	return press(m, "enter")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "jessica@crewboard.dev")
	m = press(m, "tab")
	m = typeText(m, "wrong")
	m = press(m, "enter")

	assert.Equal(t, ViewLogin, m.view)
	assert.Equal(t, "invalid email or password", m.login.errMsg)
}

func TestLoginAccepts(t *testing.T) {
	m := newTestModel(t)
	m = signIn(m, "jessica@crewboard.dev")

	assert.Equal(t, ViewBoard, m.view)
	user, ok := m.session.User()
	require.True(t, ok)
	assert.Equal(t, "e1", user.ID)
}

func TestTabCycling(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	m = press(m, "tab")
	assert.Equal(t, ViewProjects, m.view)
	m = press(m, "tab", "tab", "tab", "tab", "tab")
	assert.Equal(t, ViewBoard, m.view)

	m = press(m, "4")
	assert.Equal(t, ViewProducts, m.view)
}

func TestManagerAssignsViaPicker(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	// Open column holds t1; open the assign picker and pick the second person.
	m = press(m, "l", "a")
	require.NotNil(t, m.prompt)
	m = press(m, "j", "enter")
	require.Nil(t, m.prompt)

	snap := m.snapshot
	task, ok := snap.TaskByID("t1")
	require.True(t, ok)
	require.NotNil(t, task.AssignedToID)
	assert.Equal(t, "e2", *task.AssignedToID)

	emp, _ := snap.EmployeeByID("e2")
	assert.InDelta(t, 48.0, emp.WorkloadScore, 0.001)
}

func TestEmployeeSelfAssigns(t *testing.T) {
	m := signIn(newTestModel(t), "mike@crewboard.dev")

	m = press(m, "l", "a")
	// No picker for non-managers; the task goes straight to them.
	assert.Nil(t, m.prompt)

	task, ok := m.snapshot.TaskByID("t1")
	require.True(t, ok)
	require.NotNil(t, task.AssignedToID)
	assert.Equal(t, "e2", *task.AssignedToID)
}

func TestEmployeeCannotCreateOrDelete(t *testing.T) {
	m := signIn(newTestModel(t), "mike@crewboard.dev")

	m = press(m, "c")
	assert.Nil(t, m.create)
	assert.True(t, m.statusError)

	m = press(m, "d")
	_, ok := m.snapshot.TaskByID("t1")
	assert.True(t, ok)
}

func TestManagerCreatesTask(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	m = press(m, "c")
	require.NotNil(t, m.create)

	m = typeText(m, "Ship changelog")
	m = press(m, "tab")
	m = typeText(m, "Write and publish it")
	m = press(m, "tab")
	m = typeText(m, "3")
	m = press(m, "enter")

	assert.Nil(t, m.create)
	assert.False(t, m.statusError)

	// New tasks land at the head of the board.
	assert.Equal(t, "Ship changelog", m.snapshot.Tasks[0].Title)
}

func TestCreateValidationKeepsFormOpen(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	m = press(m, "c")
	m = press(m, "enter") // empty form

	require.NotNil(t, m.create)
	assert.True(t, m.statusError)
	assert.Len(t, m.snapshot.Tasks, 2)
}

func TestGroupJoinAndLeave(t *testing.T) {
	m := signIn(newTestModel(t), "mike@crewboard.dev")

	m = press(m, "tab") // projects
	require.Equal(t, ViewProjects, m.view)

	m = press(m, "enter") // join
	task, _ := m.snapshot.TaskByID("t2")
	assert.True(t, task.HasMember("e2"))

	emp, _ := m.snapshot.EmployeeByID("e2")
	joined := emp.WorkloadScore

	m = press(m, "enter") // leave
	task, _ = m.snapshot.TaskByID("t2")
	assert.False(t, task.HasMember("e2"))

	// Leaving does not hand the hours back.
	emp, _ = m.snapshot.EmployeeByID("e2")
	assert.InDelta(t, joined, emp.WorkloadScore, 0.001)
}

func TestPromptEscCancels(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	m = press(m, "l", "n")
	require.NotNil(t, m.prompt)
	m = typeText(m, "half a note")
	m = press(m, "esc")

	assert.Nil(t, m.prompt)
	task, _ := m.snapshot.TaskByID("t1")
	assert.Empty(t, task.Notes)
}

func TestProgressPromptUpdatesTask(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	m = press(m, "l", "p")
	require.NotNil(t, m.prompt)
	m.prompt.input.SetValue("")
	m = typeText(m, "100")
	m = press(m, "enter")

	task, _ := m.snapshot.TaskByID("t1")
	assert.Equal(t, domain.StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
}

func TestWorkloadReportFlow(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")
	m = press(m, "6")
	require.Equal(t, ViewAssistant, m.view)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m = next.(Model)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	next, _ = m.Update(workloadReportMsg{report: domain.WorkloadAnalysis{Summary: "balanced", EfficiencyScore: 80}})
	m = next.(Model)

	assert.False(t, m.loading)
	require.NotNil(t, m.assistant.workload)
	assert.Equal(t, 80, m.assistant.workload.EfficiencyScore)
	assert.Contains(t, m.View(), "balanced")
}

func TestFallbackReportStillRenders(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")
	m = press(m, "6")

	next, _ := m.Update(companyReportMsg{
		report: domain.ProductAnalysis{Summary: "Analysis unavailable."},
		err:    errors.New("offline"),
	})
	m = next.(Model)

	assert.False(t, m.loading)
	assert.True(t, m.statusError)
	require.NotNil(t, m.assistant.company)
	assert.Contains(t, m.View(), "Analysis unavailable.")
}

func TestBoardSearchFiltersColumns(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	m = press(m, "/")
	require.NotNil(t, m.prompt)
	m = typeText(m, "exports")
	m = press(m, "enter")

	mandatory, open := m.boardColumns()
	assert.Empty(t, mandatory)
	require.Len(t, open, 1)
	assert.Equal(t, "t1", open[0].ID)

	m = press(m, "x")
	_, open = m.boardColumns()
	assert.Len(t, open, 1)
}

func TestBoardSortByPriority(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")

	// Add a second open task so the sort has something to order.
	var err error
	m.snapshot, err = m.engine.CreateTask(engine.TaskDraft{
		Title: "Low prio chore", Description: "d", Type: domain.TypeOpen,
		Priority: domain.PriorityLow, EstimatedHours: 1,
	})
	require.NoError(t, err)

	m = press(m, "s")
	_, open := m.boardColumns()
	require.Len(t, open, 2)
	// Ascending rank puts the more urgent task first.
	assert.Equal(t, domain.PriorityMedium, open[0].Priority)

	m = press(m, "s")
	_, open = m.boardColumns()
	assert.Equal(t, domain.PriorityLow, open[0].Priority)
}

func TestSignOutReturnsToLogin(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")
	m = press(m, "Q")

	assert.Equal(t, ViewLogin, m.view)
	_, ok := m.session.User()
	assert.False(t, ok)
}

func TestViewRendersRoster(t *testing.T) {
	m := signIn(newTestModel(t), "jessica@crewboard.dev")
	m = press(m, "3")

	out := m.View()
	assert.True(t, strings.Contains(out, "Jessica Tran"))
	assert.True(t, strings.Contains(out, "Mike Delgado"))
}
