package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlankford/crewboard/internal/session"
)

type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{email: email, password: password}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		m.login.focus = (m.login.focus + 1) % 2
		if m.login.focus == 0 {
			m.login.email.Focus()
			m.login.password.Blur()
		} else {
			m.login.email.Blur()
			m.login.password.Focus()
		}
		return m, textinput.Blink

	case "enter":
		user, err := session.Authenticate(m.snapshot, m.login.email.Value(), m.login.password.Value())
		if err != nil {
			m.login.errMsg = "invalid email or password"
			m.logger.Info("login rejected", "email", m.login.email.Value())
			return m, nil
		}
		m.session.SignIn(user)
		m.view = ViewBoard
		m.login.errMsg = ""
		m.logger.Info("login accepted", "user", user.ID, "access", user.AccessLevel)
		return m, nil
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) viewLogin() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PanelTitle.Render("Crewboard"),
		m.styles.Label.Render("Sign in to the dashboard"),
		"",
		m.login.email.View(),
		m.login.password.View(),
	)
	if m.login.errMsg != "" {
		form = lipgloss.JoinVertical(lipgloss.Left, form, "", m.styles.ErrorText.Render(m.login.errMsg))
	}
	form = lipgloss.JoinVertical(lipgloss.Left, form, "",
		m.styles.Muted.Render("enter: sign in  tab: next field  ctrl+c: quit"))

	panel := m.styles.Panel.Render(form)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
