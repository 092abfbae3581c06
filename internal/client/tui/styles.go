package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#6b7280")
	colorInfo    = lipgloss.Color("#2196F3")
	colorBorder  = lipgloss.Color("62")
	colorButton  = lipgloss.Color("#101F38")
	colorOnLight = lipgloss.Color("#f2f2f2")
)

type styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Status   lipgloss.Style
	Muted    lipgloss.Style
	Link     lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Box      lipgloss.Style
	User     lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		Label:    lipgloss.NewStyle().Bold(true),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Notice:   lipgloss.NewStyle().Foreground(colorAccent),
		Status:   lipgloss.NewStyle().Foreground(colorInfo),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(colorInfo),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(colorOnLight).Background(colorButton).Padding(0, 2),
		Disabled: lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		User:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Help:     lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
