package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/preview"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
)

// Button and in-flight labels.
const (
	labelLogin     = "Log in"
	labelLoggingIn = "Logging in..."
	labelSignup    = "Sign up"
	labelSigningUp = "Signing up..."
	labelUpload    = "Upload"
	labelUploading = "Uploading..."
	labelThinking  = "Thinking..."
)

func (m Model) View() string {
	switch m.st.View {
	case state.ViewSignup:
		return m.viewSignup()
	case state.ViewDashboard:
		return m.viewDashboard()
	default:
		return m.viewLogin()
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("salesdesk · Log in") + "\n\n")
	if m.st.LoginNotice != "" {
		b.WriteString(m.styles.Notice.Render(m.st.LoginNotice) + "\n\n")
	}

	b.WriteString(m.field("Username", m.login[loginUsername]))
	b.WriteString(m.field("Password", m.login[loginPassword]))

	if m.st.LoggingIn {
		b.WriteString(m.spinner.View() + " " + labelLoggingIn + "\n")
	} else {
		b.WriteString(m.styles.Button.Render(labelLogin) + "\n")
	}
	if m.st.LoginError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.st.LoginError) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("enter: log in • tab: next field • ctrl+n: sign up • ctrl+c: quit"))
	return b.String()
}

func (m Model) viewSignup() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("salesdesk · Sign up") + "\n\n")

	b.WriteString(m.field("Email", m.signup[signupEmail]))
	b.WriteString(m.field("Full name", m.signup[signupFullName]))
	b.WriteString(m.field("Password", m.signup[signupPassword]))
	b.WriteString(m.field("Confirm password", m.signup[signupConfirm]))

	if m.st.SigningUp {
		b.WriteString(m.spinner.View() + " " + labelSigningUp + "\n")
	} else {
		b.WriteString(m.styles.Button.Render(labelSignup) + "\n")
	}
	if m.st.SignupError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.st.SignupError) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("enter: next / submit • tab: next field • ctrl+l: back to login • ctrl+c: quit"))
	return b.String()
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Sales dashboard"))
	b.WriteString(m.styles.Muted.Render("logged in as "+m.st.Session.Username) + "\n\n")

	// upload
	b.WriteString(m.field("Sales file", m.dash[dashFile]))
	b.WriteString(m.uploadButton())
	if m.st.Upload.Message != "" {
		b.WriteString("  " + m.styles.Status.Render(m.st.Upload.Message))
	}
	b.WriteString("\n")

	// results
	if len(m.preview.Errors) > 0 {
		b.WriteString("\n" + m.styles.Label.Render("Mapping errors") + "\n")
		for _, e := range m.preview.Errors {
			b.WriteString(m.styles.Error.Render("• "+e) + "\n")
		}
	}
	if len(m.preview.Columns) > 0 {
		b.WriteString("\n" + m.styles.Label.Render("Cleaned data preview") + "\n")
		b.WriteString(m.table.View() + "\n")
		b.WriteString(m.styles.Muted.Render(m.preview.Caption()) + "\n")
	} else if m.st.Dataset != nil {
		b.WriteString("\n" + m.styles.Muted.Render(m.preview.Caption()) + "\n")
	}

	if m.opts.DashboardURL != "" {
		b.WriteString("\nDashboard: " + m.styles.Link.Render(m.opts.DashboardURL) + "\n")
	}

	// chat
	b.WriteString("\n" + m.styles.Label.Render("Ask about your data") + "\n")
	b.WriteString(m.styles.Box.Render(m.viewport.View()) + "\n")
	if m.st.AIPending {
		b.WriteString(m.spinner.View() + " " + m.styles.Disabled.Render(labelThinking) + "\n")
	} else {
		b.WriteString(m.dash[dashQuestion].View() + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("enter: select file / send • tab: switch input • ctrl+u: upload • pgup/pgdown: scroll chat • ctrl+o: log out • ctrl+c: quit"))
	return b.String()
}

func (m Model) field(label string, in interface{ View() string }) string {
	return m.styles.Label.Render(label) + "\n" + in.View() + "\n\n"
}

func (m Model) uploadButton() string {
	switch {
	case m.st.Upload.Uploading:
		return m.spinner.View() + " " + m.styles.Disabled.Render(labelUploading)
	case m.st.UploadEnabled():
		return m.styles.Button.Render(labelUpload)
	default:
		return m.styles.Disabled.Render(labelUpload)
	}
}

// refreshTable rebuilds the preview table from the current dataset.
func (m *Model) refreshTable() {
	m.preview = preview.Build(m.st.Dataset, m.opts.PreviewRows)

	cols := make([]table.Column, len(m.preview.Columns))
	for i, name := range m.preview.Columns {
		w := lipgloss.Width(name)
		for _, row := range m.preview.Rows {
			w = max(w, lipgloss.Width(row[i]))
		}
		cols[i] = table.Column{Title: name, Width: min(w, maxCellWidth)}
	}

	rows := make([]table.Row, len(m.preview.Rows))
	for i, r := range m.preview.Rows {
		rows[i] = table.Row(r)
	}

	// rows are cleared first so no stale row is rendered against the new columns
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 1)
}

// refreshTranscript re-renders the chat transcript into the viewport.
func (m *Model) refreshTranscript() {
	turns := m.st.Transcript.Turns()
	if len(turns) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render("No messages yet."))
		return
	}

	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(m.renderTurn(turn))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderTurn(turn models.ChatTurn) string {
	if turn.Role == models.RoleUser {
		return m.styles.User.Render("You: ") + turn.Content
	}
	if turn.Content == state.MsgAIFailed {
		return "AI: " + m.styles.Error.Render(turn.Content)
	}
	if m.opts.Markdown != nil {
		if out, err := m.opts.Markdown.Render("```sql\n" + turn.Content + "\n```"); err == nil {
			return "AI:" + strings.TrimRight(out, "\n")
		}
	}
	return "AI: " + turn.Content
}
