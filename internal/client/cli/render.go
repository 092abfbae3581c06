package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/preview"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	userStyle   = lipgloss.NewStyle().Bold(true)
)

// renderTable draws the preview rows with a header.
func renderTable(t preview.Table) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Columns...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func renderErrors(errs []string) string {
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, "Mapping errors:")
	for _, e := range errs {
		lines = append(lines, errorStyle.Render("- "+e))
	}
	return strings.Join(lines, "\n")
}

func renderTurn(turn models.ChatTurn) string {
	if turn.Role == models.RoleUser {
		return userStyle.Render("you> ") + turn.Content
	}
	return "ai> " + turn.Content
}
