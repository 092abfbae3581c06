package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case eventMsg:
		m.apply(msg.ev)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.st.View {
		case state.ViewSignup:
			return m.updateSignup(msg)
		case state.ViewDashboard:
			return m.updateDashboard(msg)
		default:
			return m.updateLogin(msg)
		}
	}

	return m, nil
}

// apply folds ev into the state and brings the widgets in line with it.
func (m *Model) apply(ev state.Event) {
	prev := m.st
	m.st = state.Reduce(m.st, ev)

	if m.st.View != prev.View {
		m.enterView()
	}
	if m.st.Dataset != prev.Dataset {
		m.refreshTable()
	}
	if m.st.Transcript.Len() != prev.Transcript.Len() || m.st.AIPending != prev.AIPending {
		m.refreshTranscript()
	}
}

// enterView resets the inputs of the view that just became active.
func (m *Model) enterView() {
	switch m.st.View {
	case state.ViewLogin:
		for i := range m.login {
			m.login[i].Reset()
		}
		m.login[loginUsername].SetValue(m.st.LoginUsername)
		for i := range m.dash {
			m.dash[i].Reset()
		}
		m.setFocus(loginUsername)
		if m.st.LoginUsername != "" {
			m.setFocus(loginPassword)
		}
	case state.ViewSignup:
		for i := range m.signup {
			m.signup[i].Reset()
		}
		m.setFocus(signupEmail)
	case state.ViewDashboard:
		m.login[loginPassword].Reset()
		m.setFocus(dashFile)
	}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "ctrl+n":
		m.apply(state.SignupOpened{})
		return m, nil
	case "enter":
		return m.submitLogin()
	}
	return m.updateFocused(msg)
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.st.LoggingIn {
		return m, nil
	}

	username := strings.TrimSpace(m.login[loginUsername].Value())
	password := m.login[loginPassword].Value()
	switch {
	case username == "":
		m.setFocus(loginUsername)
		return m, nil
	case password == "":
		m.setFocus(loginPassword)
		return m, nil
	}

	m.apply(state.LoginSubmitted{Username: username})
	m.login[loginPassword].Reset()

	return m, tea.Batch(m.spinner.Tick, m.authenticate(username, []byte(password)))
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "ctrl+l", "esc":
		m.apply(state.LoginOpened{})
		return m, nil
	case "enter":
		if m.focus < signupConfirm {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submitSignup()
	}
	return m.updateFocused(msg)
}

func (m Model) submitSignup() (tea.Model, tea.Cmd) {
	if m.st.SigningUp {
		return m, nil
	}

	draft := models.SignupDraft{
		Email:           strings.TrimSpace(m.signup[signupEmail].Value()),
		FullName:        strings.TrimSpace(m.signup[signupFullName].Value()),
		Password:        m.signup[signupPassword].Value(),
		ConfirmPassword: m.signup[signupConfirm].Value(),
	}
	if draft.Email == "" || draft.Password == "" {
		m.setFocus(signupEmail)
		if draft.Email != "" {
			m.setFocus(signupPassword)
		}
		return m, nil
	}

	m.apply(state.SignupSubmitted{Draft: draft})
	if !m.st.SigningUp {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.register(draft))
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.setFocus(m.focus + 1)
		return m, nil
	case "ctrl+u":
		return m.submitUpload()
	case "ctrl+o":
		return m, m.logout()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "enter":
		if m.focus == dashFile {
			return m, m.selectFile(m.dash[dashFile].Value())
		}
		return m.submitQuestion()
	}

	if m.focus == dashQuestion && m.st.AIPending {
		return m, nil
	}
	if m.focus == dashFile && m.st.Upload.Uploading {
		return m, nil
	}

	// a drop pastes the whole path and replaces the previous one
	if msg.Paste && m.focus == dashFile {
		m.dash[dashFile].SetValue(string(msg.Runes))
		return m, m.selectFile(m.dash[dashFile].Value())
	}
	return m.updateFocused(msg)
}

func (m Model) submitUpload() (tea.Model, tea.Cmd) {
	if !m.st.CanUpload() {
		return m, nil
	}
	m.apply(state.UploadSubmitted{})
	return m, tea.Batch(m.spinner.Tick, m.upload(m.st.Upload))
}

func (m Model) submitQuestion() (tea.Model, tea.Cmd) {
	question := strings.TrimSpace(m.dash[dashQuestion].Value())
	if !m.st.CanAsk(question) {
		return m, nil
	}
	m.apply(state.ChatSubmitted{Question: question})
	m.dash[dashQuestion].Reset()
	return m, tea.Batch(m.spinner.Tick, m.ask(question))
}

func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := m.inputs()
	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h
	m.viewport.Width = max(w-4, 10)
	m.viewport.Height = max(h/4, 4)
	m.dash[dashFile].Width = max(w-20, 20)
	m.dash[dashQuestion].Width = max(w-20, 20)
	m.refreshTranscript()
}
