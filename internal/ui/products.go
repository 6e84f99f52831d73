package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/domain"
)

// productsState tracks the cursor over product lines and the last AI report.
type productsState struct {
	cursor int
	report *domain.ProductAnalysis
}

func (m Model) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.snapshot.Products

	switch msg.String() {
	case "j", "down":
		if m.products.cursor < len(products)-1 {
			m.products.cursor++
			m.products.report = nil
		}
	case "k", "up":
		if m.products.cursor > 0 {
			m.products.cursor--
			m.products.report = nil
		}
	}

	if m.products.cursor >= len(products) {
		return m, nil
	}
	product := products[m.products.cursor]

	switch msg.String() {
	case "c":
		user, _ := m.session.User()
		productID, author := product.ID, user.Name
		m.prompt = newTextPrompt("Comment on "+product.Name, "comment", "", func(m Model, text string) (Model, tea.Cmd) {
			m.apply(func() (domain.Snapshot, error) {
				return m.engine.AddProductComment(productID, author, text)
			}, "comment added")
			return m, nil
		})

	case "b":
		if len(product.BugReports) == 0 {
			m.setError("no bug reports")
			return m, nil
		}
		var options []promptOption
		for _, b := range product.BugReports {
			options = append(options, promptOption{
				id:    b.ID,
				label: fmt.Sprintf("[%s] %s (%s)", b.Severity, b.Title, b.Status),
			})
		}
		productID := product.ID
		m.prompt = newPickerPrompt("Toggle bug status", options, func(m Model, bugID string) (Model, tea.Cmd) {
			m.apply(func() (domain.Snapshot, error) {
				return m.engine.ToggleBugStatus(productID, bugID)
			}, "bug status toggled")
			return m, nil
		})

	case "l":
		return m.startServerLog(product)

	case "e":
		if !m.session.CanManage() {
			m.setError("only managers can edit product descriptions")
			return m, nil
		}
		productID := product.ID
		m.prompt = newTextPrompt("Description for "+product.Name, "description", product.Description, func(m Model, text string) (Model, tea.Cmd) {
			m.apply(func() (domain.Snapshot, error) {
				return m.engine.UpdateProductDescription(productID, text)
			}, "description updated")
			return m, nil
		})

	case "r":
		m.loading = true
		analyzer, p := m.analyzer, product
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			report, err := analyzer.AnalyzeProduct(context.Background(), p)
			return productReportMsg{report: report, err: err}
		})
	}

	return m, nil
}

// startServerLog chains the type picker, description and duration prompts.
func (m Model) startServerLog(product domain.Product) (tea.Model, tea.Cmd) {
	productID := product.ID
	options := []promptOption{
		{id: string(domain.LogOperational), label: "Operational"},
		{id: string(domain.LogMaintenance), label: "Maintenance"},
		{id: string(domain.LogOutage), label: "Outage"},
	}
	m.prompt = newPickerPrompt("Log entry type", options, func(m Model, logType string) (Model, tea.Cmd) {
		m.prompt = newTextPrompt("Description", "what happened", "", func(m Model, description string) (Model, tea.Cmd) {
			m.prompt = newTextPrompt("Duration (minutes)", "0", "0", func(m Model, raw string) (Model, tea.Cmd) {
				minutes, err := strconv.Atoi(strings.TrimSpace(raw))
				if err != nil {
					m.setError("duration must be a number")
					return m, nil
				}
				m.apply(func() (domain.Snapshot, error) {
					return m.engine.AddServerLog(productID, domain.ServerLogType(logType), description, minutes)
				}, "log entry added")
				return m, nil
			})
			return m, nil
		})
		return m, nil
	})
	return m, nil
}

func (m Model) viewProducts() string {
	products := m.snapshot.Products
	if len(products) == 0 {
		return m.styles.Muted.Render("  no products")
	}
	if m.products.cursor >= len(products) {
		m.products.cursor = len(products) - 1
	}
	product := products[m.products.cursor]

	// Left rail: product list.
	var rail []string
	for i, p := range products {
		line := fmt.Sprintf("%s  %s", p.Name, p.Status)
		if i == m.products.cursor {
			rail = append(rail, m.styles.TabActive.Render(line))
		} else {
			rail = append(rail, m.styles.Tab.Render(line))
		}
	}
	left := m.styles.Column.Width(24).Height(m.contentHeight() - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rail...))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderProductDetail(product))
}

func (m Model) renderProductDetail(product domain.Product) string {
	width := m.width - 30

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.PanelTitle.Render(product.Name), "  ",
			m.styles.TypeBadge.Render(string(product.Status))),
		m.styles.CardMeta.Render(product.Tagline),
		m.styles.Label.Render(product.Description),
		"",
	}

	if latest, ok := product.LatestMonth(); ok {
		lines = append(lines, m.styles.Label.Render(fmt.Sprintf(
			"%s: traffic %d · profit %.0f · server %.0f · input %.0f",
			latest.Month, latest.Traffic, latest.Profit, latest.ServerCost, latest.InputCost)))
	}
	lines = append(lines, m.styles.Label.Render(fmt.Sprintf(
		"total profit %.0f · open bugs %d", product.TotalProfit(), product.OpenBugs())))

	if len(product.ServerLogs) > 0 {
		lines = append(lines, "", m.styles.PanelTitle.Render("Server logs"))
		for _, l := range product.ServerLogs {
			lines = append(lines, m.styles.Muted.Render(fmt.Sprintf(
				"  %s %s %s", l.Date.Format("01-02"), l.Type, l.Description)))
		}
	}

	if len(product.BugReports) > 0 {
		lines = append(lines, "", m.styles.PanelTitle.Render("Bugs"))
		for _, b := range product.BugReports {
			lines = append(lines, m.styles.Muted.Render(fmt.Sprintf(
				"  [%s] %s (%s)", b.Severity, b.Title, b.Status)))
		}
	}

	if len(product.DevComments) > 0 {
		lines = append(lines, "", m.styles.PanelTitle.Render("Dev comments"))
		for _, c := range product.DevComments {
			lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("  %s: %s", c.Author, c.Text)))
		}
	}

	if m.loading {
		lines = append(lines, "", m.spinner.View()+" analyzing...")
	} else if m.products.report != nil {
		r := m.products.report
		lines = append(lines, "",
			m.styles.PanelTitle.Render("Analysis"),
			m.styles.Label.Render(r.Summary),
			m.styles.Label.Render(r.FutureOutlook),
			m.styles.CardMeta.Render(fmt.Sprintf("predicted growth %.1f%%", r.PredictedGrowth)),
		)
		for _, risk := range r.KeyRisks {
			lines = append(lines, m.styles.ErrorText.Render("  ! "+risk))
		}
	}

	return m.styles.Panel.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
