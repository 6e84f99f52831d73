package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// Messages delivered by the analysis commands.
type workloadReportMsg struct {
	report domain.WorkloadAnalysis
	err    error
}

type companyReportMsg struct {
	report domain.ProductAnalysis
	err    error
}

type productReportMsg struct {
	report domain.ProductAnalysis
	err    error
}

type chatReplyMsg struct {
	text string
}

// assistantState holds the AI panel: reports plus the chat transcript.
type assistantState struct {
	workload *domain.WorkloadAnalysis
	company  *domain.ProductAnalysis
	history  []domain.ChatMessage
	input    textinput.Model
}

func newAssistantState() assistantState {
	input := textinput.New()
	input.Placeholder = "ask about the team"
	input.CharLimit = 200
	input.Width = 60
	return assistantState{input: input}
}

func (m Model) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "w":
		m.loading = true
		analyzer := m.analyzer
		employees, tasks := m.snapshot.Employees, m.snapshot.Tasks
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			report, err := analyzer.AnalyzeWorkload(context.Background(), employees, tasks)
			return workloadReportMsg{report: report, err: err}
		})

	case "o":
		m.loading = true
		analyzer := m.analyzer
		products := m.snapshot.Products
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			report, err := analyzer.AnalyzeCompany(context.Background(), products)
			return companyReportMsg{report: report, err: err}
		})

	case "i":
		m.assistant.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateAssistantInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.assistant.input.Blur()
		return m, nil

	case "enter":
		question := m.assistant.input.Value()
		if question == "" {
			return m, nil
		}
		m.assistant.input.SetValue("")
		m.assistant.input.Blur()

		history := m.assistant.history
		m.assistant.history = append(history, domain.ChatMessage{
			Role: domain.RoleUser, Text: question, Timestamp: time.Now(),
		})
		m.loading = true

		analyzer := m.analyzer
		employees, tasks := m.snapshot.Employees, m.snapshot.Tasks
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			// The fallback answer still reads as a reply.
			reply, _ := analyzer.Chat(context.Background(), question, history, employees, tasks)
			return chatReplyMsg{text: reply}
		})
	}

	var cmd tea.Cmd
	m.assistant.input, cmd = m.assistant.input.Update(msg)
	return m, cmd
}

func (m Model) viewAssistant() string {
	var lines []string

	if m.loading {
		lines = append(lines, m.spinner.View()+" thinking...", "")
	}

	if r := m.assistant.workload; r != nil {
		lines = append(lines,
			m.styles.PanelTitle.Render("Workload report"),
			m.styles.Label.Render(r.Summary),
			m.styles.CardMeta.Render(fmt.Sprintf("efficiency %d/100", r.EfficiencyScore)),
		)
		for _, name := range r.BurnoutRisk {
			lines = append(lines, m.styles.ErrorText.Render("  ! burnout risk: "+name))
		}
		for _, rec := range r.Recommendations {
			lines = append(lines, m.styles.Label.Render("  - "+rec))
		}
		lines = append(lines, "")
	}

	if r := m.assistant.company; r != nil {
		lines = append(lines,
			m.styles.PanelTitle.Render("Company report"),
			m.styles.Label.Render(r.Summary),
			m.styles.Label.Render(r.FutureOutlook),
			m.styles.CardMeta.Render(fmt.Sprintf("predicted growth %.1f%%", r.PredictedGrowth)),
		)
		for _, risk := range r.KeyRisks {
			lines = append(lines, m.styles.ErrorText.Render("  ! "+risk))
		}
		lines = append(lines, "")
	}

	if len(m.assistant.history) > 0 {
		lines = append(lines, m.styles.PanelTitle.Render("Chat"))
		for _, msg := range m.assistant.history {
			prefix := "you"
			style := m.styles.CardMeta
			if msg.Role == domain.RoleModel {
				prefix = "assistant"
				style = m.styles.Label
			}
			lines = append(lines, style.Render(fmt.Sprintf("%s: %s", prefix, msg.Text)))
		}
		lines = append(lines, "")
	}

	if len(lines) == 0 {
		lines = append(lines, m.styles.Muted.Render("  no reports yet"), "")
	}

	lines = append(lines, m.assistant.input.View())

	return m.styles.Panel.Width(m.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
