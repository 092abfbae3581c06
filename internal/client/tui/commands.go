package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/common"
)

// The commands below run off the UI goroutine and must not touch the Model.

func (m Model) authenticate(username string, password []byte) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		defer common.WipeByteArray(password)
		return eventMsg{ctrl.Authenticate(ctx, username, password)}
	}
}

func (m Model) register(draft models.SignupDraft) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return eventMsg{ctrl.Register(ctx, draft)}
	}
}

func (m Model) selectFile(raw string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return eventMsg{ctrl.SelectFile(raw)}
	}
}

func (m Model) upload(job models.UploadJob) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return eventMsg{ctrl.UploadAndClean(ctx, job)}
	}
}

func (m Model) ask(question string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return eventMsg{ctrl.AskAI(ctx, question)}
	}
}

func (m Model) logout() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return eventMsg{ctrl.Logout(ctx)}
	}
}
