// Package tui is the full-screen salesdesk client built on bubbletea.
//
// The Model owns a state.State and a set of widgets. Key presses become state
// events; remote calls run as tea.Cmds that report back with the event the
// controller produced, which is folded into the state before the widgets are
// refreshed.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/dmitrijs2005/salesdesk/internal/client/controller"
	"github.com/dmitrijs2005/salesdesk/internal/client/preview"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
)

const (
	defaultWidth  = 100
	defaultHeight = 40
	maxCellWidth  = 24
)

// Input slots per view.
const (
	loginUsername = iota
	loginPassword
)

const (
	signupEmail = iota
	signupFullName
	signupPassword
	signupConfirm
)

const (
	dashFile = iota
	dashQuestion
)

// Options tune the model. Zero values are replaced with defaults.
type Options struct {
	DashboardURL string
	PreviewRows  int
	HistoryLimit int

	// Markdown renders assistant answers; nil prints them as plain text.
	Markdown *glamour.TermRenderer
}

// eventMsg carries the outcome of a remote call back into Update.
type eventMsg struct {
	ev state.Event
}

type Model struct {
	ctx  context.Context
	ctrl *controller.Controller
	opts Options
	st   state.State

	login  []textinput.Model
	signup []textinput.Model
	dash   []textinput.Model
	focus  int

	preview  preview.Table
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   styles

	width  int
	height int
}

func New(ctx context.Context, ctrl *controller.Controller, opts Options) Model {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = preview.DefaultRows
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:  ctx,
		ctrl: ctrl,
		opts: opts,
		st:   state.New(opts.HistoryLimit),

		login: []textinput.Model{
			newInput("email or username", false),
			newInput("password", true),
		},
		signup: []textinput.Model{
			newInput("email", false),
			newInput("full name", false),
			newInput("password", true),
			newInput("confirm password", true),
		},
		dash: []textinput.Model{
			newInput("type or drop a sales file here, then press enter", false),
			newInput("ask a question about your sales data", false),
		},

		table:    table.New(table.WithFocused(false)),
		viewport: viewport.New(defaultWidth-4, 8),
		spinner:  sp,
		styles:   defaultStyles(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.dash[dashQuestion].CharLimit = 1000
	m.setFocus(0)
	m.refreshTranscript()

	return m
}

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Width = 48
	ti.Cursor.SetMode(cursor.CursorStatic)
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("salesdesk")
}

// State exposes the current view-state.
func (m Model) State() state.State {
	return m.st
}

// inputs returns the inputs of the active view.
func (m *Model) inputs() []textinput.Model {
	switch m.st.View {
	case state.ViewSignup:
		return m.signup
	case state.ViewDashboard:
		return m.dash
	default:
		return m.login
	}
}

func (m *Model) setFocus(i int) {
	inputs := m.inputs()
	n := len(inputs)
	m.focus = ((i % n) + n) % n
	for j := range inputs {
		if j == m.focus {
			inputs[j].Focus()
		} else {
			inputs[j].Blur()
		}
	}
}

func (m *Model) busy() bool {
	return m.st.LoggingIn || m.st.SigningUp || m.st.Upload.Uploading || m.st.AIPending
}
